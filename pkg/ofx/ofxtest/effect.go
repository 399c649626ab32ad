package ofxtest

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Effect is a fake effect descriptor or instance.
type Effect struct {
	host    *Host
	Props   *PropSet
	Params  *ParamSet
	clips   map[string]*Clip
	aborted bool
}

// NewEffect creates an effect. An empty context creates a top-level
// descriptor, anything else an instance in that context.
func (h *Host) NewEffect(context ofx.Context) *Effect {
	e := &Effect{
		host:   h,
		Props:  h.NewPropertySet(),
		Params: h.NewParamSet(),
		clips:  make(map[string]*Clip),
	}
	if context == "" {
		e.Props.Set(ofx.PropType, ofx.TypeImageEffect)
	} else {
		e.Props.Set(ofx.PropType, ofx.TypeImageEffectInstance)
		e.Props.Set(ofx.ImageEffectPropContext, context)
		e.Props.Set(ofx.PropIsInteractive, 0)
		e.Props.Set(ofx.ImageEffectPropProjectSize, 1920.0, 1080.0)
		e.Props.Set(ofx.ImageEffectPropProjectOffset, 0.0, 0.0)
		e.Props.Set(ofx.ImageEffectPropProjectExtent, 1920.0, 1080.0)
		e.Props.Set(ofx.ImageEffectPropProjectPixelAspectRatio, 1.0)
		e.Props.Set(ofx.ImageEffectInstancePropEffectDuration, 100.0)
		e.Props.Set(ofx.ImageEffectPropFrameRate, 25.0)
	}
	e.Props.Set(ofx.PropInstanceData, uintptr(0))

	h.mu.Lock()
	h.effects[unsafe.Pointer(e)] = e
	h.mu.Unlock()
	return e
}

// Handle returns the opaque effect handle.
func (e *Effect) Handle() ofx.ImageEffectHandle {
	return ofx.ImageEffectHandle(unsafe.Pointer(e))
}

// InstanceData returns the raw value of the instance-data property.
func (e *Effect) InstanceData() uintptr {
	return e.Props.Pointer(ofx.PropInstanceData, 0)
}

// SetAbort makes abort() report v.
func (e *Effect) SetAbort(v bool) {
	e.host.mu.Lock()
	e.aborted = v
	e.host.mu.Unlock()
}

// AddClip adds a connected clip, optionally backed by frame.
func (e *Effect) AddClip(name string, frame *Frame) *Clip {
	c := &Clip{
		Name:  name,
		Props: e.host.NewPropertySet(),
		Frame: frame,
	}
	c.Props.Set(ofx.PropType, ofx.TypeClip)
	c.Props.Set(ofx.PropName, name)
	c.Props.Set(ofx.ImageClipPropConnected, 1)
	c.Props.Set(ofx.ImageEffectPropPreMultiplication, ofx.ImagePreMultiplied)
	c.Props.Set(ofx.ImagePropPixelAspectRatio, 1.0)
	c.Props.Set(ofx.ImageEffectPropFrameRate, 25.0)
	c.Props.Set(ofx.ImageEffectPropFrameRange, 0.0, 100.0)
	if frame != nil {
		c.Props.Set(ofx.ImageEffectPropPixelDepth, frame.Depth)
		c.Props.Set(ofx.ImageEffectPropComponents, frame.Components)
		c.Props.Set(ofx.ImageClipPropUnmappedPixelDepth, frame.Depth)
		c.Props.Set(ofx.ImageClipPropUnmappedComponents, frame.Components)
		c.RoD = ofx.RectD{
			X1: float64(frame.Bounds.X1), Y1: float64(frame.Bounds.Y1),
			X2: float64(frame.Bounds.X2), Y2: float64(frame.Bounds.Y2),
		}
	}

	e.host.mu.Lock()
	e.clips[name] = c
	e.host.clips[unsafe.Pointer(c)] = c
	e.host.mu.Unlock()
	return c
}

// Clip returns the named clip or nil.
func (e *Effect) Clip(name string) *Clip {
	e.host.mu.Lock()
	defer e.host.mu.Unlock()
	return e.clips[name]
}

// Clip is a fake clip.
type Clip struct {
	Name  string
	Props *PropSet
	Frame *Frame
	RoD   ofx.RectD
	// LastRegion is the region passed to the last image or texture fetch.
	LastRegion *ofx.RectD
}

// Frame is the pixel buffer a clip serves.
type Frame struct {
	Bounds     ofx.RectI
	Depth      ofx.BitDepth
	Components ofx.PixelComponent
	Data       []byte
	// BottomUp stores rows last-to-first and reports a negative row stride.
	BottomUp bool
}

// NewFrame allocates a zeroed frame.
func NewFrame(bounds ofx.RectI, depth ofx.BitDepth, components ofx.PixelComponent) *Frame {
	f := &Frame{Bounds: bounds, Depth: depth, Components: components}
	f.Data = make([]byte, f.stride()*bounds.Height())
	return f
}

// PixelBytes returns the size of one pixel.
func (f *Frame) PixelBytes() int {
	channels := map[ofx.PixelComponent]int{
		ofx.ComponentRGBA:  4,
		ofx.ComponentRGB:   3,
		ofx.ComponentAlpha: 1,
	}[f.Components]
	size := map[ofx.BitDepth]int{
		ofx.BitDepthByte:  1,
		ofx.BitDepthShort: 2,
		ofx.BitDepthHalf:  2,
		ofx.BitDepthFloat: 4,
	}[f.Depth]
	return channels * size
}

func (f *Frame) stride() int {
	return f.PixelBytes() * f.Bounds.Width()
}

// RowBytes returns the stride the host reports, negative for BottomUp frames.
func (f *Frame) RowBytes() int {
	if f.BottomUp {
		return -f.stride()
	}
	return f.stride()
}

// Row returns the bytes of row y in frame coordinates.
func (f *Frame) Row(y int) []byte {
	i := y - f.Bounds.Y1
	if f.BottomUp {
		i = f.Bounds.Height() - 1 - i
	}
	s := f.stride()
	return f.Data[i*s : (i+1)*s]
}

func (f *Frame) dataPointer() uintptr {
	if len(f.Data) == 0 {
		return 0
	}
	row := f.Row(f.Bounds.Y1)
	return uintptr(unsafe.Pointer(&row[0]))
}

// Image is a fetched image or texture.
type Image struct {
	Props   *PropSet
	Texture bool
}

func (h *Host) newImage(c *Clip, texture bool) *Image {
	img := &Image{Props: h.NewPropertySet(), Texture: texture}
	f := c.Frame
	img.Props.Set(ofx.PropType, ofx.TypeImage)
	img.Props.Set(ofx.ImagePropBounds, f.Bounds.X1, f.Bounds.Y1, f.Bounds.X2, f.Bounds.Y2)
	img.Props.Set(ofx.ImagePropRegionOfDefinition, f.Bounds.X1, f.Bounds.Y1, f.Bounds.X2, f.Bounds.Y2)
	img.Props.Set(ofx.ImagePropRowBytes, f.RowBytes())
	img.Props.Set(ofx.ImageEffectPropPixelDepth, f.Depth)
	img.Props.Set(ofx.ImageEffectPropComponents, f.Components)
	img.Props.Set(ofx.ImageEffectPropPreMultiplication, ofx.ImagePreMultiplied)
	img.Props.Set(ofx.ImageEffectPropRenderScale, 1.0, 1.0)
	img.Props.Set(ofx.ImagePropPixelAspectRatio, 1.0)
	img.Props.Set(ofx.ImagePropField, ofx.FieldNone)
	img.Props.Set(ofx.ImagePropUniqueIdentifier, c.Name)
	if texture {
		img.Props.Set(ofx.ImageEffectPropOpenGLTextureIndex, 1)
		img.Props.Set(ofx.ImageEffectPropOpenGLTextureTarget, 0x0DE1)
	} else {
		img.Props.Set(ofx.ImagePropData, f.dataPointer())
	}

	h.mu.Lock()
	h.images[unsafe.Pointer(img.Props)] = img
	h.mu.Unlock()
	return img
}

func (h *Host) releaseImage(handle ofx.PropertySetHandle, texture bool) ofx.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	img, ok := h.images[unsafe.Pointer(handle)]
	if !ok || img.Texture != texture {
		return ofx.StatErrBadHandle
	}
	delete(h.images, unsafe.Pointer(handle))
	delete(h.sets, unsafe.Pointer(handle))
	return ofx.StatOK
}

func (h *Host) effect(handle ofx.ImageEffectHandle) *Effect {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.effects[unsafe.Pointer(handle)]
}

func (h *Host) clip(handle ofx.ImageClipHandle) *Clip {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clips[unsafe.Pointer(handle)]
}

type imageEffectSuite struct{ h *Host }

func (s *imageEffectSuite) GetPropertySet(effect ofx.ImageEffectHandle) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("getPropertySet"); st != ofx.StatOK {
		return nil, st
	}
	e := s.h.effect(effect)
	if e == nil {
		return nil, ofx.StatErrBadHandle
	}
	return e.Props.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) GetParamSet(effect ofx.ImageEffectHandle) (ofx.ParamSetHandle, ofx.Status) {
	if st := s.h.begin("getParamSet"); st != ofx.StatOK {
		return nil, st
	}
	e := s.h.effect(effect)
	if e == nil {
		return nil, ofx.StatErrBadHandle
	}
	return e.Params.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) ClipDefine(effect ofx.ImageEffectHandle, name string) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("clipDefine"); st != ofx.StatOK {
		return nil, st
	}
	e := s.h.effect(effect)
	if e == nil {
		return nil, ofx.StatErrBadHandle
	}
	if c := e.Clip(name); c != nil {
		return c.Props.Handle(), ofx.StatOK
	}
	return e.AddClip(name, nil).Props.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) ClipGetHandle(effect ofx.ImageEffectHandle, name string) (ofx.ImageClipHandle, ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("clipGetHandle"); st != ofx.StatOK {
		return nil, nil, st
	}
	e := s.h.effect(effect)
	if e == nil {
		return nil, nil, ofx.StatErrBadHandle
	}
	c := e.Clip(name)
	if c == nil {
		return nil, nil, ofx.StatErrUnknown
	}
	return ofx.ImageClipHandle(unsafe.Pointer(c)), c.Props.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) ClipGetPropertySet(clip ofx.ImageClipHandle) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("clipGetPropertySet"); st != ofx.StatOK {
		return nil, st
	}
	c := s.h.clip(clip)
	if c == nil {
		return nil, ofx.StatErrBadHandle
	}
	return c.Props.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) ClipGetImage(clip ofx.ImageClipHandle, _ ofx.Time, region *ofx.RectD) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("clipGetImage"); st != ofx.StatOK {
		return nil, st
	}
	c := s.h.clip(clip)
	if c == nil {
		return nil, ofx.StatErrBadHandle
	}
	c.LastRegion = region
	if c.Frame == nil {
		return nil, ofx.StatFailed
	}
	return s.h.newImage(c, false).Props.Handle(), ofx.StatOK
}

func (s *imageEffectSuite) ClipReleaseImage(image ofx.PropertySetHandle) ofx.Status {
	if st := s.h.begin("clipReleaseImage"); st != ofx.StatOK {
		return st
	}
	return s.h.releaseImage(image, false)
}

func (s *imageEffectSuite) ClipGetRegionOfDefinition(clip ofx.ImageClipHandle, _ ofx.Time) (ofx.RectD, ofx.Status) {
	if st := s.h.begin("clipGetRegionOfDefinition"); st != ofx.StatOK {
		return ofx.RectD{}, st
	}
	c := s.h.clip(clip)
	if c == nil {
		return ofx.RectD{}, ofx.StatErrBadHandle
	}
	return c.RoD, ofx.StatOK
}

func (s *imageEffectSuite) Abort(effect ofx.ImageEffectHandle) bool {
	s.h.count("abort")
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	e := s.h.effects[unsafe.Pointer(effect)]
	return e != nil && e.aborted
}

type openGLSuite struct{ h *Host }

func (s *openGLSuite) ClipLoadTexture(clip ofx.ImageClipHandle, _ ofx.Time, _ ofx.BitDepth, region *ofx.RectD) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("clipLoadTexture"); st != ofx.StatOK {
		return nil, st
	}
	c := s.h.clip(clip)
	if c == nil {
		return nil, ofx.StatErrBadHandle
	}
	c.LastRegion = region
	if c.Frame == nil {
		return nil, ofx.StatFailed
	}
	return s.h.newImage(c, true).Props.Handle(), ofx.StatOK
}

func (s *openGLSuite) ClipFreeTexture(texture ofx.PropertySetHandle) ofx.Status {
	if st := s.h.begin("clipFreeTexture"); st != ofx.StatOK {
		return st
	}
	return s.h.releaseImage(texture, true)
}

func (s *openGLSuite) FlushResources() ofx.Status {
	return s.h.begin("flushResources")
}
