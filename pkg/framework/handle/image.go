package handle

import (
	"sync"
	"sync/atomic"

	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	"github.com/justyntemme/ofxgo/pkg/framework/image"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Image is an image or texture fetched from a clip. It must be released
// exactly once; Release is idempotent and WithImage does it automatically.
type Image struct {
	props    ofx.PropertySetHandle
	texture  bool
	suites   *suite.Table
	released atomic.Bool
}

// Properties returns the image's property view.
func (img *Image) Properties() property.Image {
	return property.Image{Set: newSet(img.suites, img.props)}
}

// IsTexture reports whether the image was loaded as an OpenGL texture.
func (img *Image) IsTexture() bool { return img.texture }

// Released reports whether the image went back to the host.
func (img *Image) Released() bool { return img.released.Load() }

// Bounds returns the pixel bounds.
func (img *Image) Bounds() (ofx.RectI, error) {
	return property.Bounds.Get(img.Properties())
}

// Release hands the image back to the host with clipFreeTexture for textures
// and clipReleaseImage otherwise. Only the first call reaches the host.
func (img *Image) Release() error {
	if img.released.Load() {
		return nil
	}
	if img.texture {
		gl, err := img.suites.OpenGL()
		if err != nil {
			return err
		}
		if !img.released.CompareAndSwap(false, true) {
			return nil
		}
		debug.DefaultMetrics.ImageReleased(debug.KindTexture)
		return ofx.FromStatus(gl.ClipFreeTexture(img.props), "clipFreeTexture")
	}
	ie, err := img.suites.ImageEffect()
	if err != nil {
		return err
	}
	if !img.released.CompareAndSwap(false, true) {
		return nil
	}
	debug.DefaultMetrics.ImageReleased(debug.KindImage)
	return ofx.FromStatus(ie.ClipReleaseImage(img.props), "clipReleaseImage")
}

// Descriptor returns a typed read-only view of the pixels. P must match the
// image's pixel depth and components.
func Descriptor[P image.Format](img *Image) (image.Descriptor[P], error) {
	if img.released.Load() {
		return image.Descriptor[P]{}, ofx.NewError(ofx.KindInvalidHandle, "image already released")
	}
	if img.texture {
		return image.Descriptor[P]{}, ofx.NewError(ofx.KindInvalidHandle, "texture has no host pixel buffer")
	}
	view := img.Properties()
	depth, err := property.PixelDepth.Get(view)
	if err != nil {
		return image.Descriptor[P]{}, err
	}
	components, err := property.Components.Get(view)
	if err != nil {
		return image.Descriptor[P]{}, err
	}
	if err := image.Check[P](depth, components); err != nil {
		return image.Descriptor[P]{}, err
	}
	bounds, err := property.Bounds.Get(view)
	if err != nil {
		return image.Descriptor[P]{}, err
	}
	rowBytes, err := property.RowBytes.Get(view)
	if err != nil {
		return image.Descriptor[P]{}, err
	}
	data, err := property.Data.Get(view)
	if err != nil {
		return image.Descriptor[P]{}, err
	}
	return image.NewDescriptor[P](bounds, rowBytes, data)
}

// ImageMut is a writable image. Typed pixel access goes through borrows: any
// number of shared borrows or one exclusive borrow at a time. A conflicting
// borrow fails with Busy instead of blocking.
type ImageMut struct {
	img *Image

	mu      sync.Mutex
	readers int
	writer  bool
}

// Properties returns the image's property view.
func (m *ImageMut) Properties() property.Image { return m.img.Properties() }

// IsTexture reports whether the image was loaded as an OpenGL texture.
func (m *ImageMut) IsTexture() bool { return m.img.texture }

// Released reports whether the image went back to the host.
func (m *ImageMut) Released() bool { return m.img.Released() }

// Bounds returns the pixel bounds.
func (m *ImageMut) Bounds() (ofx.RectI, error) { return m.img.Bounds() }

// Release hands the image back to the host. Only the first call reaches the
// host.
func (m *ImageMut) Release() error { return m.img.Release() }

// Borrow takes a shared borrow.
func (m *ImageMut) Borrow() (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writer {
		return nil, ofx.NewError(ofx.KindBusy, "image is borrowed for writing")
	}
	m.readers++
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.readers--
			m.mu.Unlock()
		})
	}, nil
}

// BorrowMut takes the exclusive borrow.
func (m *ImageMut) BorrowMut() (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writer || m.readers > 0 {
		return nil, ofx.NewError(ofx.KindBusy, "image is already borrowed")
	}
	m.writer = true
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.writer = false
			m.mu.Unlock()
		})
	}, nil
}

// ReadOnly borrows m and returns a read-only pixel view plus the func that
// ends the borrow.
func ReadOnly[P image.Format](m *ImageMut) (image.Descriptor[P], func(), error) {
	release, err := m.Borrow()
	if err != nil {
		return image.Descriptor[P]{}, nil, err
	}
	d, err := Descriptor[P](m.img)
	if err != nil {
		release()
		return image.Descriptor[P]{}, nil, err
	}
	return d, release, nil
}

// Writable borrows m exclusively and returns a writable pixel view plus the
// func that ends the borrow.
func Writable[P image.Format](m *ImageMut) (image.DescriptorMut[P], func(), error) {
	release, err := m.BorrowMut()
	if err != nil {
		return image.DescriptorMut[P]{}, nil, err
	}
	d, err := Descriptor[P](m.img)
	if err != nil {
		release()
		return image.DescriptorMut[P]{}, nil, err
	}
	return image.DescriptorMut[P]{Descriptor: d}, release, nil
}

// TilesMut borrows m exclusively and splits it into n row tiles.
func TilesMut[P image.Format](m *ImageMut, n int) ([]image.Tile[P], func(), error) {
	d, release, err := Writable[P](m)
	if err != nil {
		return nil, nil, err
	}
	return d.Tiles(n), release, nil
}
