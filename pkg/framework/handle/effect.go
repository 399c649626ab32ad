// Package handle wraps the opaque handles a host passes to a plugin.
//
// Every wrapper pairs a raw handle with the suite table that operates on it.
// The table is immutable after Load, so wrappers copy the pointer freely and
// can be used from any goroutine the host allows. Wrappers hold no Go state
// in host memory; anything the host must hand back later goes through a
// registry id.
package handle

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// ImageEffect is an effect descriptor or instance.
type ImageEffect struct {
	handle ofx.ImageEffectHandle
	suites *suite.Table
}

// NewImageEffect wraps h.
func NewImageEffect(h ofx.ImageEffectHandle, suites *suite.Table) ImageEffect {
	return ImageEffect{handle: h, suites: suites}
}

// Handle returns the raw handle.
func (e ImageEffect) Handle() ofx.ImageEffectHandle { return e.handle }

// Suites returns the suite table the effect uses.
func (e ImageEffect) Suites() *suite.Table { return e.suites }

func newSet(suites *suite.Table, h ofx.PropertySetHandle) property.Set {
	ps, _ := suites.Property()
	return property.NewSet(h, ps)
}

func (e ImageEffect) imageEffect() (ofx.ImageEffectSuiteV1, error) {
	if e.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil image effect handle")
	}
	return e.suites.ImageEffect()
}

func (e ImageEffect) propertySet() (property.Set, error) {
	ie, err := e.imageEffect()
	if err != nil {
		return property.Set{}, err
	}
	h, st := ie.GetPropertySet(e.handle)
	if err := ofx.FromStatus(st, "getPropertySet"); err != nil {
		return property.Set{}, err
	}
	return newSet(e.suites, h), nil
}

// Descriptor returns the property view of an effect being described.
func (e ImageEffect) Descriptor() (property.EffectDescriptor, error) {
	s, err := e.propertySet()
	return property.EffectDescriptor{Set: s}, err
}

// Instance returns the property view of an effect instance.
func (e ImageEffect) Instance() (property.EffectInstance, error) {
	s, err := e.propertySet()
	return property.EffectInstance{Set: s}, err
}

// ParamSet returns the effect's parameter set.
func (e ImageEffect) ParamSet() (ParamSet, error) {
	ie, err := e.imageEffect()
	if err != nil {
		return ParamSet{}, err
	}
	h, st := ie.GetParamSet(e.handle)
	if err := ofx.FromStatus(st, "getParamSet"); err != nil {
		return ParamSet{}, err
	}
	return ParamSet{handle: h, suites: e.suites}, nil
}

// Abort reports whether the host wants the current render abandoned. It is
// false when the suites are not loaded.
func (e ImageEffect) Abort() bool {
	ie, err := e.imageEffect()
	if err != nil {
		return false
	}
	return ie.Abort(e.handle)
}

// DefineClip defines an input clip while describing in a context.
func (e ImageEffect) DefineClip(name string) (property.ClipDescriptor, error) {
	if err := property.CheckString(name); err != nil {
		return property.ClipDescriptor{}, err
	}
	ie, err := e.imageEffect()
	if err != nil {
		return property.ClipDescriptor{}, err
	}
	h, st := ie.ClipDefine(e.handle, name)
	if err := ofx.FromStatus(st, "clipDefine "+name); err != nil {
		return property.ClipDescriptor{}, err
	}
	return property.ClipDescriptor{Set: newSet(e.suites, h)}, nil
}

// DefineOutputClip defines the mandatory "Output" clip.
func (e ImageEffect) DefineOutputClip() (property.ClipDescriptor, error) {
	return e.DefineClip(ofx.OutputClipName)
}

// DefineSourceClip defines the "Source" clip of filter-like contexts.
func (e ImageEffect) DefineSourceClip() (property.ClipDescriptor, error) {
	return e.DefineClip(ofx.SimpleSourceClipName)
}

// Clip returns the named clip of an instance.
func (e ImageEffect) Clip(name string) (ClipInstance, error) {
	if err := property.CheckString(name); err != nil {
		return ClipInstance{}, err
	}
	ie, err := e.imageEffect()
	if err != nil {
		return ClipInstance{}, err
	}
	clip, props, st := ie.ClipGetHandle(e.handle, name)
	if st != ofx.StatOK {
		return ClipInstance{}, ofx.NewError(ofx.KindInvalidHandle, "unknown clip %q (clipGetHandle: %s)", name, st)
	}
	return ClipInstance{handle: clip, props: props, name: name, suites: e.suites}, nil
}

// OutputClip returns the "Output" clip.
func (e ImageEffect) OutputClip() (ClipInstance, error) {
	return e.Clip(ofx.OutputClipName)
}

// SourceClip returns the "Source" clip.
func (e ImageEffect) SourceClip() (ClipInstance, error) {
	return e.Clip(ofx.SimpleSourceClipName)
}

// Message posts a message to the user. For questions the reply is returned as
// StatReplyYes or StatReplyNo.
func (e ImageEffect) Message(kind ofx.MessageType, id, text string) (ofx.Status, error) {
	if err := checkStrings(id, text); err != nil {
		return ofx.StatFailed, err
	}
	ms, err := e.suites.Message()
	if err != nil {
		return ofx.StatFailed, err
	}
	st := ms.Message(e.handle, kind, id, text)
	switch st {
	case ofx.StatOK, ofx.StatReplyYes, ofx.StatReplyNo, ofx.StatReplyDefault:
		return st, nil
	}
	return st, ofx.FromStatus(st, "message")
}

// SetPersistentMessage shows a message that stays until cleared. It needs the
// v2 message suite.
func (e ImageEffect) SetPersistentMessage(kind ofx.MessageType, id, text string) error {
	if err := checkStrings(id, text); err != nil {
		return err
	}
	ms, err := e.suites.MessageV2()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ms.SetPersistentMessage(e.handle, kind, id, text), "setPersistentMessage")
}

// ClearPersistentMessage removes the persistent message.
func (e ImageEffect) ClearPersistentMessage() error {
	ms, err := e.suites.MessageV2()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ms.ClearPersistentMessage(e.handle), "clearPersistentMessage")
}

// ProgressStart opens a progress bar. messageID is only passed on when the
// host has the v2 progress suite.
func (e ImageEffect) ProgressStart(label, messageID string) error {
	if err := checkStrings(label, messageID); err != nil {
		return err
	}
	if v2, err := e.suites.ProgressV2(); err == nil {
		return ofx.FromStatus(v2.ProgressStartWithID(e.handle, label, messageID), "progressStart")
	}
	v1, err := e.suites.Progress()
	if err != nil {
		return err
	}
	return ofx.FromStatus(v1.ProgressStart(e.handle, label), "progressStart")
}

// ProgressUpdate moves the progress bar to p in [0, 1]. It returns false when
// the user asked to cancel.
func (e ImageEffect) ProgressUpdate(p float64) (bool, error) {
	var st ofx.Status
	if v2, err := e.suites.ProgressV2(); err == nil {
		st = v2.ProgressUpdate(e.handle, p)
	} else {
		v1, err := e.suites.Progress()
		if err != nil {
			return false, err
		}
		st = v1.ProgressUpdate(e.handle, p)
	}
	if st == ofx.StatReplyNo {
		return false, nil
	}
	return true, ofx.FromStatus(st, "progressUpdate")
}

// ProgressEnd closes the progress bar.
func (e ImageEffect) ProgressEnd() error {
	if v2, err := e.suites.ProgressV2(); err == nil {
		return ofx.FromStatus(v2.ProgressEnd(e.handle), "progressEnd")
	}
	v1, err := e.suites.Progress()
	if err != nil {
		return err
	}
	return ofx.FromStatus(v1.ProgressEnd(e.handle), "progressEnd")
}

// Time returns the current timeline time.
func (e ImageEffect) Time() (ofx.Time, error) {
	tl, err := e.suites.TimeLine()
	if err != nil {
		return 0, err
	}
	t, st := tl.GetTime(e.handle)
	return t, ofx.FromStatus(st, "getTime")
}

// GotoTime moves the timeline.
func (e ImageEffect) GotoTime(t ofx.Time) error {
	tl, err := e.suites.TimeLine()
	if err != nil {
		return err
	}
	return ofx.FromStatus(tl.GotoTime(e.handle, t), "gotoTime")
}

// TimeBounds returns the first and last frame of the timeline.
func (e ImageEffect) TimeBounds() (ofx.Time, ofx.Time, error) {
	tl, err := e.suites.TimeLine()
	if err != nil {
		return 0, 0, err
	}
	first, last, st := tl.GetTimeBounds(e.handle)
	return first, last, ofx.FromStatus(st, "getTimeBounds")
}

// Memory is a block allocated through the host memory suite.
type Memory struct {
	ptr    uintptr
	size   int
	memory ofx.MemorySuiteV1
}

// Alloc allocates n bytes of host memory tied to the effect.
func (e ImageEffect) Alloc(n int) (*Memory, error) {
	if n < 0 {
		return nil, ofx.NewError(ofx.KindInvalidValue, "allocate %d bytes", n)
	}
	ms, err := e.suites.Memory()
	if err != nil {
		return nil, err
	}
	ptr, st := ms.MemoryAlloc(e.handle, n)
	if err := ofx.FromStatus(st, "memoryAlloc"); err != nil {
		return nil, err
	}
	return &Memory{ptr: ptr, size: n, memory: ms}, nil
}

// Bytes returns the block as a slice, or nil once freed.
func (m *Memory) Bytes() []byte {
	if m.ptr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(m.ptr)), m.size) // host memory
}

// Free returns the block to the host. Later calls do nothing.
func (m *Memory) Free() error {
	if m.ptr == 0 {
		return nil
	}
	ptr := m.ptr
	m.ptr = 0
	return ofx.FromStatus(m.memory.MemoryFree(ptr), "memoryFree")
}

func checkStrings(values ...string) error {
	for _, v := range values {
		if err := property.CheckString(v); err != nil {
			return err
		}
	}
	return nil
}
