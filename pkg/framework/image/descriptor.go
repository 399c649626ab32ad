package image

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Descriptor is a read-only typed view of a host pixel buffer. Row y starts
// rowBytes*(y-bounds.Y1) bytes from data; rowBytes may be negative for
// bottom-up buffers.
type Descriptor[P Format] struct {
	bounds   ofx.RectI
	rowBytes int
	data     unsafe.Pointer
}

// DescriptorMut is a writable view of a host pixel buffer.
type DescriptorMut[P Format] struct {
	Descriptor[P]
}

// NewDescriptor builds a view from the three image properties. data is the
// host address of the pixel at (bounds.X1, bounds.Y1).
func NewDescriptor[P Format](bounds ofx.RectI, rowBytes int, data uintptr) (Descriptor[P], error) {
	if bounds.Empty() {
		return Descriptor[P]{bounds: bounds, rowBytes: rowBytes}, nil
	}
	if data == 0 {
		return Descriptor[P]{}, ofx.NewError(ofx.KindInvalidHandle, "image has no pixel data")
	}
	stride := rowBytes
	if stride < 0 {
		stride = -stride
	}
	if need := bounds.Width() * PixelSize[P](); stride < need {
		return Descriptor[P]{}, ofx.NewError(ofx.KindInvalidHandle,
			"row stride %d is shorter than a %d pixel row (%d bytes)", rowBytes, bounds.Width(), need)
	}
	return Descriptor[P]{
		bounds:   bounds,
		rowBytes: rowBytes,
		data:     unsafe.Pointer(data), // host memory, outside the Go heap
	}, nil
}

// NewDescriptorMut is NewDescriptor for writable buffers.
func NewDescriptorMut[P Format](bounds ofx.RectI, rowBytes int, data uintptr) (DescriptorMut[P], error) {
	d, err := NewDescriptor[P](bounds, rowBytes, data)
	if err != nil {
		return DescriptorMut[P]{}, err
	}
	return DescriptorMut[P]{d}, nil
}

// Bounds returns the pixel bounds.
func (d Descriptor[P]) Bounds() ofx.RectI { return d.bounds }

// RowBytes returns the signed row stride.
func (d Descriptor[P]) RowBytes() int { return d.rowBytes }

func (d Descriptor[P]) row(y int) []P {
	if y < d.bounds.Y1 || y >= d.bounds.Y2 {
		panic("image: row out of bounds")
	}
	return unsafe.Slice((*P)(d.rowPointer(y)), d.bounds.Width())
}

func (d Descriptor[P]) rowPointer(y int) unsafe.Pointer {
	return unsafe.Add(d.data, (y-d.bounds.Y1)*d.rowBytes)
}

// At returns the pixel at (x, y) in image coordinates.
func (d Descriptor[P]) At(x, y int) P {
	return d.row(y)[x-d.bounds.X1]
}

// CopyRow copies row y into dst and returns the number of pixels copied.
func (d Descriptor[P]) CopyRow(dst []P, y int) int {
	return copy(dst, d.row(y))
}

// Row returns row y as a slice aliasing host memory.
func (d DescriptorMut[P]) Row(y int) []P {
	return d.row(y)
}

// Set writes the pixel at (x, y).
func (d DescriptorMut[P]) Set(x, y int, p P) {
	d.row(y)[x-d.bounds.X1] = p
}

// ReadOnly returns the read-only view of d.
func (d DescriptorMut[P]) ReadOnly() Descriptor[P] {
	return d.Descriptor
}
