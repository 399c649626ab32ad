package handle

import (
	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// ClipInstance is a clip of a live effect instance.
type ClipInstance struct {
	handle ofx.ImageClipHandle
	props  ofx.PropertySetHandle
	name   string
	suites *suite.Table
}

// Name returns the clip name.
func (c ClipInstance) Name() string { return c.name }

// Handle returns the raw clip handle.
func (c ClipInstance) Handle() ofx.ImageClipHandle { return c.handle }

// Properties returns the clip's property view.
func (c ClipInstance) Properties() property.ClipInstance {
	return property.ClipInstance{Set: newSet(c.suites, c.props)}
}

// Connected reports whether anything is plugged into the clip.
func (c ClipInstance) Connected() (bool, error) {
	return property.Connected.Get(c.Properties())
}

func (c ClipInstance) imageEffect() (ofx.ImageEffectSuiteV1, error) {
	if c.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil clip handle")
	}
	return c.suites.ImageEffect()
}

// RegionOfDefinition returns the clip's region of definition at t.
func (c ClipInstance) RegionOfDefinition(t ofx.Time) (ofx.RectD, error) {
	ie, err := c.imageEffect()
	if err != nil {
		return ofx.RectD{}, err
	}
	rod, st := ie.ClipGetRegionOfDefinition(c.handle, t)
	return rod, ofx.FromStatus(st, "clipGetRegionOfDefinition "+c.name)
}

func (c ClipInstance) fetch(t ofx.Time, region *ofx.RectD) (*Image, error) {
	ie, err := c.imageEffect()
	if err != nil {
		return nil, err
	}
	h, st := ie.ClipGetImage(c.handle, t, region)
	if err := ofx.FromStatus(st, "clipGetImage "+c.name); err != nil {
		return nil, err
	}
	debug.DefaultMetrics.ImageAcquired(debug.KindImage)
	return &Image{props: h, suites: c.suites}, nil
}

func (c ClipInstance) fetchTexture(t ofx.Time, format ofx.BitDepth, region *ofx.RectD) (*Image, error) {
	if c.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil clip handle")
	}
	gl, err := c.suites.OpenGL()
	if err != nil {
		return nil, err
	}
	h, st := gl.ClipLoadTexture(c.handle, t, format, region)
	if err := ofx.FromStatus(st, "clipLoadTexture "+c.name); err != nil {
		return nil, err
	}
	debug.DefaultMetrics.ImageAcquired(debug.KindTexture)
	return &Image{props: h, texture: true, suites: c.suites}, nil
}

// GetImage fetches the clip's full region of definition at t.
func (c ClipInstance) GetImage(t ofx.Time) (*Image, error) {
	return c.fetch(t, nil)
}

// GetImageRect fetches region of the clip at t.
func (c ClipInstance) GetImageRect(t ofx.Time, region ofx.RectD) (*Image, error) {
	return c.fetch(t, &region)
}

// GetImageMut fetches a writable image, normally from the output clip.
func (c ClipInstance) GetImageMut(t ofx.Time) (*ImageMut, error) {
	img, err := c.fetch(t, nil)
	if err != nil {
		return nil, err
	}
	return &ImageMut{img: img}, nil
}

// GetImageRectMut fetches a writable region of the clip.
func (c ClipInstance) GetImageRectMut(t ofx.Time, region ofx.RectD) (*ImageMut, error) {
	img, err := c.fetch(t, &region)
	if err != nil {
		return nil, err
	}
	return &ImageMut{img: img}, nil
}

// LoadTexture loads the clip as an OpenGL texture. format may be empty for
// the clip's own depth and a nil region means the full region of definition.
// It fails with InvalidSuite when the host has no OpenGL render suite.
func (c ClipInstance) LoadTexture(t ofx.Time, format ofx.BitDepth, region *ofx.RectD) (*Image, error) {
	return c.fetchTexture(t, format, region)
}

// LoadTextureMut is LoadTexture for render targets.
func (c ClipInstance) LoadTextureMut(t ofx.Time, format ofx.BitDepth, region *ofx.RectD) (*ImageMut, error) {
	img, err := c.fetchTexture(t, format, region)
	if err != nil {
		return nil, err
	}
	return &ImageMut{img: img}, nil
}

// WithImage fetches an image, runs fn and releases the image on every exit
// path, panics included. A nil region means the full region of definition.
func (c ClipInstance) WithImage(t ofx.Time, region *ofx.RectD, fn func(*Image) error) (err error) {
	img, err := c.fetch(t, region)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := img.Release(); err == nil {
			err = releaseErr
		}
	}()
	return fn(img)
}

// WithImageMut is WithImage for writable images.
func (c ClipInstance) WithImageMut(t ofx.Time, region *ofx.RectD, fn func(*ImageMut) error) (err error) {
	img, err := c.fetch(t, region)
	if err != nil {
		return err
	}
	m := &ImageMut{img: img}
	defer func() {
		if releaseErr := m.Release(); err == nil {
			err = releaseErr
		}
	}()
	return fn(m)
}
