package bridge

// #include "bridge.h"
import "C"

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

var (
	_ ofx.PropertySuiteV1                = (*propertySuite)(nil)
	_ ofx.ImageEffectSuiteV1             = (*imageEffectSuite)(nil)
	_ ofx.ParameterSuiteV1               = (*parameterSuite)(nil)
	_ ofx.MemorySuiteV1                  = (*memorySuite)(nil)
	_ ofx.MultiThreadSuiteV1             = (*multiThreadSuite)(nil)
	_ ofx.MessageSuiteV1                 = (*messageSuite)(nil)
	_ ofx.MessageSuiteV2                 = (*messageSuiteV2)(nil)
	_ ofx.ProgressSuiteV1                = (*progressSuite)(nil)
	_ ofx.ProgressSuiteV2                = (*progressSuiteV2)(nil)
	_ ofx.TimeLineSuiteV1                = (*timeLineSuite)(nil)
	_ ofx.ParametricParameterSuiteV1     = (*parametricSuite)(nil)
	_ ofx.ImageEffectOpenGLRenderSuiteV1 = (*openGLSuite)(nil)
)

// Handle conversions

func props(h ofx.PropertySetHandle) C.OfxPropertySetHandle {
	return C.OfxPropertySetHandle(unsafe.Pointer(h))
}

func effect(h ofx.ImageEffectHandle) C.OfxImageEffectHandle {
	return C.OfxImageEffectHandle(unsafe.Pointer(h))
}

func clip(h ofx.ImageClipHandle) C.OfxImageClipHandle {
	return C.OfxImageClipHandle(unsafe.Pointer(h))
}

func paramSet(h ofx.ParamSetHandle) C.OfxParamSetHandle {
	return C.OfxParamSetHandle(unsafe.Pointer(h))
}

func param(h ofx.ParamHandle) C.OfxParamHandle {
	return C.OfxParamHandle(unsafe.Pointer(h))
}

func mutex(h ofx.MutexHandle) C.OfxMutexHandle {
	return C.OfxMutexHandle(unsafe.Pointer(h))
}

// cOptional is cString, but the empty string becomes NULL.
func cOptional(s string) (*C.char, func()) {
	if s == "" {
		return nil, func() {}
	}
	return cString(s)
}

// Property suite

type propertySuite struct{ s *C.OfxPropertySuiteV1 }

func (p *propertySuite) PropSetPointer(h ofx.PropertySetHandle, name string, index int, v uintptr) ofx.Status {
	cname, free := cString(name)
	defer free()
	return status(C.ofxgo_prop_set_pointer(p.s, props(h), cname, C.int(index), C.uintptr_t(v)))
}

func (p *propertySuite) PropSetString(h ofx.PropertySetHandle, name string, index int, v string) ofx.Status {
	cname, free := cString(name)
	defer free()
	cv, freeValue := cString(v)
	defer freeValue()
	return status(C.ofxgo_prop_set_string(p.s, props(h), cname, C.int(index), cv))
}

func (p *propertySuite) PropSetDouble(h ofx.PropertySetHandle, name string, index int, v float64) ofx.Status {
	cname, free := cString(name)
	defer free()
	return status(C.ofxgo_prop_set_double(p.s, props(h), cname, C.int(index), C.double(v)))
}

func (p *propertySuite) PropSetInt(h ofx.PropertySetHandle, name string, index int, v int) ofx.Status {
	cname, free := cString(name)
	defer free()
	return status(C.ofxgo_prop_set_int(p.s, props(h), cname, C.int(index), C.int(v)))
}

func (p *propertySuite) PropGetPointer(h ofx.PropertySetHandle, name string, index int) (uintptr, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var v C.uintptr_t
	st := C.ofxgo_prop_get_pointer(p.s, props(h), cname, C.int(index), &v)
	return uintptr(v), status(st)
}

func (p *propertySuite) PropGetString(h ofx.PropertySetHandle, name string, index int) (string, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var v *C.char
	st := status(C.ofxgo_prop_get_string(p.s, props(h), cname, C.int(index), &v))
	if st != ofx.StatOK || v == nil {
		return "", st
	}
	return C.GoString(v), st
}

func (p *propertySuite) PropGetDouble(h ofx.PropertySetHandle, name string, index int) (float64, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var v C.double
	st := C.ofxgo_prop_get_double(p.s, props(h), cname, C.int(index), &v)
	return float64(v), status(st)
}

func (p *propertySuite) PropGetInt(h ofx.PropertySetHandle, name string, index int) (int, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var v C.int
	st := C.ofxgo_prop_get_int(p.s, props(h), cname, C.int(index), &v)
	return int(v), status(st)
}

func (p *propertySuite) PropReset(h ofx.PropertySetHandle, name string) ofx.Status {
	cname, free := cString(name)
	defer free()
	return status(C.ofxgo_prop_reset(p.s, props(h), cname))
}

func (p *propertySuite) PropGetDimension(h ofx.PropertySetHandle, name string) (int, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var n C.int
	st := C.ofxgo_prop_get_dimension(p.s, props(h), cname, &n)
	return int(n), status(st)
}

// Image effect suite

type imageEffectSuite struct{ s *C.OfxImageEffectSuiteV1 }

func (e *imageEffectSuite) GetPropertySet(h ofx.ImageEffectHandle) (ofx.PropertySetHandle, ofx.Status) {
	var out C.OfxPropertySetHandle
	st := C.ofxgo_effect_get_property_set(e.s, effect(h), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (e *imageEffectSuite) GetParamSet(h ofx.ImageEffectHandle) (ofx.ParamSetHandle, ofx.Status) {
	var out C.OfxParamSetHandle
	st := C.ofxgo_effect_get_param_set(e.s, effect(h), &out)
	return ofx.ParamSetHandle(unsafe.Pointer(out)), status(st)
}

func (e *imageEffectSuite) ClipDefine(h ofx.ImageEffectHandle, name string) (ofx.PropertySetHandle, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var out C.OfxPropertySetHandle
	st := C.ofxgo_clip_define(e.s, effect(h), cname, &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (e *imageEffectSuite) ClipGetHandle(h ofx.ImageEffectHandle, name string) (ofx.ImageClipHandle, ofx.PropertySetHandle, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var c C.OfxImageClipHandle
	var ps C.OfxPropertySetHandle
	st := C.ofxgo_clip_get_handle(e.s, effect(h), cname, &c, &ps)
	return ofx.ImageClipHandle(unsafe.Pointer(c)), ofx.PropertySetHandle(unsafe.Pointer(ps)), status(st)
}

func (e *imageEffectSuite) ClipGetPropertySet(c ofx.ImageClipHandle) (ofx.PropertySetHandle, ofx.Status) {
	var out C.OfxPropertySetHandle
	st := C.ofxgo_clip_get_property_set(e.s, clip(c), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (e *imageEffectSuite) ClipGetImage(c ofx.ImageClipHandle, t ofx.Time, region *ofx.RectD) (ofx.PropertySetHandle, ofx.Status) {
	var out C.OfxPropertySetHandle
	st := C.ofxgo_clip_get_image(e.s, clip(c), C.OfxTime(t), cRect(region), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (e *imageEffectSuite) ClipReleaseImage(image ofx.PropertySetHandle) ofx.Status {
	return status(C.ofxgo_clip_release_image(e.s, props(image)))
}

func (e *imageEffectSuite) ClipGetRegionOfDefinition(c ofx.ImageClipHandle, t ofx.Time) (ofx.RectD, ofx.Status) {
	var r C.OfxRectD
	st := C.ofxgo_clip_get_rod(e.s, clip(c), C.OfxTime(t), &r)
	return ofx.RectD{X1: float64(r.x1), Y1: float64(r.y1), X2: float64(r.x2), Y2: float64(r.y2)}, status(st)
}

func (e *imageEffectSuite) Abort(h ofx.ImageEffectHandle) bool {
	return C.ofxgo_effect_abort(e.s, effect(h)) != 0
}

// Parameter suite

type parameterSuite struct{ s *C.OfxParameterSuiteV1 }

func (p *parameterSuite) ParamDefine(set ofx.ParamSetHandle, paramType ofx.ParamType, name string) (ofx.PropertySetHandle, ofx.Status) {
	ctype, freeType := cString(string(paramType))
	defer freeType()
	cname, free := cString(name)
	defer free()
	var out C.OfxPropertySetHandle
	st := C.ofxgo_param_define(p.s, paramSet(set), ctype, cname, &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (p *parameterSuite) ParamGetHandle(set ofx.ParamSetHandle, name string) (ofx.ParamHandle, ofx.PropertySetHandle, ofx.Status) {
	cname, free := cString(name)
	defer free()
	var h C.OfxParamHandle
	var ps C.OfxPropertySetHandle
	st := C.ofxgo_param_get_handle(p.s, paramSet(set), cname, &h, &ps)
	return ofx.ParamHandle(unsafe.Pointer(h)), ofx.PropertySetHandle(unsafe.Pointer(ps)), status(st)
}

func (p *parameterSuite) ParamSetGetPropertySet(set ofx.ParamSetHandle) (ofx.PropertySetHandle, ofx.Status) {
	var out C.OfxPropertySetHandle
	st := C.ofxgo_param_set_get_property_set(p.s, paramSet(set), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (p *parameterSuite) ParamGetPropertySet(h ofx.ParamHandle) (ofx.PropertySetHandle, ofx.Status) {
	var out C.OfxPropertySetHandle
	st := C.ofxgo_param_get_property_set(p.s, param(h), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (p *parameterSuite) ParamGetValueInt(h ofx.ParamHandle) (int, ofx.Status) {
	var v C.int
	st := C.ofxgo_param_get_int(p.s, param(h), &v)
	return int(v), status(st)
}

func (p *parameterSuite) ParamGetValueDouble(h ofx.ParamHandle) (float64, ofx.Status) {
	var v C.double
	st := C.ofxgo_param_get_double(p.s, param(h), &v)
	return float64(v), status(st)
}

func goStringPtr(v *C.char) *string {
	if v == nil {
		return nil
	}
	s := C.GoString(v)
	return &s
}

func (p *parameterSuite) ParamGetValueString(h ofx.ParamHandle) (*string, ofx.Status) {
	var v *C.char
	st := C.ofxgo_param_get_string(p.s, param(h), &v)
	return goStringPtr(v), status(st)
}

func (p *parameterSuite) ParamGetValueAtTimeInt(h ofx.ParamHandle, t ofx.Time) (int, ofx.Status) {
	var v C.int
	st := C.ofxgo_param_get_int_at(p.s, param(h), C.OfxTime(t), &v)
	return int(v), status(st)
}

func (p *parameterSuite) ParamGetValueAtTimeDouble(h ofx.ParamHandle, t ofx.Time) (float64, ofx.Status) {
	var v C.double
	st := C.ofxgo_param_get_double_at(p.s, param(h), C.OfxTime(t), &v)
	return float64(v), status(st)
}

func (p *parameterSuite) ParamGetValueAtTimeString(h ofx.ParamHandle, t ofx.Time) (*string, ofx.Status) {
	var v *C.char
	st := C.ofxgo_param_get_string_at(p.s, param(h), C.OfxTime(t), &v)
	return goStringPtr(v), status(st)
}

func (p *parameterSuite) ParamSetValueInt(h ofx.ParamHandle, v int) ofx.Status {
	return status(C.ofxgo_param_set_int(p.s, param(h), C.int(v)))
}

func (p *parameterSuite) ParamSetValueDouble(h ofx.ParamHandle, v float64) ofx.Status {
	return status(C.ofxgo_param_set_double(p.s, param(h), C.double(v)))
}

func (p *parameterSuite) ParamSetValueString(h ofx.ParamHandle, v string) ofx.Status {
	cv, free := cString(v)
	defer free()
	return status(C.ofxgo_param_set_string(p.s, param(h), cv))
}

func (p *parameterSuite) ParamSetValueAtTimeInt(h ofx.ParamHandle, t ofx.Time, v int) ofx.Status {
	return status(C.ofxgo_param_set_int_at(p.s, param(h), C.OfxTime(t), C.int(v)))
}

func (p *parameterSuite) ParamSetValueAtTimeDouble(h ofx.ParamHandle, t ofx.Time, v float64) ofx.Status {
	return status(C.ofxgo_param_set_double_at(p.s, param(h), C.OfxTime(t), C.double(v)))
}

func (p *parameterSuite) ParamSetValueAtTimeString(h ofx.ParamHandle, t ofx.Time, v string) ofx.Status {
	cv, free := cString(v)
	defer free()
	return status(C.ofxgo_param_set_string_at(p.s, param(h), C.OfxTime(t), cv))
}

func (p *parameterSuite) ParamGetNumKeys(h ofx.ParamHandle) (int, ofx.Status) {
	var n C.uint
	st := C.ofxgo_param_get_num_keys(p.s, param(h), &n)
	return int(n), status(st)
}

func (p *parameterSuite) ParamGetKeyTime(h ofx.ParamHandle, nth int) (ofx.Time, ofx.Status) {
	var t C.OfxTime
	st := C.ofxgo_param_get_key_time(p.s, param(h), C.uint(nth), &t)
	return ofx.Time(t), status(st)
}

func (p *parameterSuite) ParamGetKeyIndex(h ofx.ParamHandle, t ofx.Time, direction ofx.KeySearch) (int, ofx.Status) {
	var index C.int
	st := C.ofxgo_param_get_key_index(p.s, param(h), C.OfxTime(t), C.int(direction), &index)
	return int(index), status(st)
}

func (p *parameterSuite) ParamDeleteKey(h ofx.ParamHandle, t ofx.Time) ofx.Status {
	return status(C.ofxgo_param_delete_key(p.s, param(h), C.OfxTime(t)))
}

func (p *parameterSuite) ParamDeleteAllKeys(h ofx.ParamHandle) ofx.Status {
	return status(C.ofxgo_param_delete_all_keys(p.s, param(h)))
}

func (p *parameterSuite) ParamEditBegin(set ofx.ParamSetHandle, name string) ofx.Status {
	cname, free := cString(name)
	defer free()
	return status(C.ofxgo_param_edit_begin(p.s, paramSet(set), cname))
}

func (p *parameterSuite) ParamEditEnd(set ofx.ParamSetHandle) ofx.Status {
	return status(C.ofxgo_param_edit_end(p.s, paramSet(set)))
}

// Memory suite

type memorySuite struct{ s *C.OfxMemorySuiteV1 }

func (m *memorySuite) MemoryAlloc(h ofx.ImageEffectHandle, size int) (uintptr, ofx.Status) {
	var out C.uintptr_t
	st := C.ofxgo_memory_alloc(m.s, effect(h), C.size_t(size), &out)
	return uintptr(out), status(st)
}

func (m *memorySuite) MemoryFree(ptr uintptr) ofx.Status {
	return status(C.ofxgo_memory_free(m.s, C.uintptr_t(ptr)))
}

// Multithread suite

type multiThreadSuite struct{ s *C.OfxMultiThreadSuiteV1 }

func (m *multiThreadSuite) MultiThread(threads int, arg uintptr) ofx.Status {
	return status(C.ofxgo_multi_thread(m.s, C.uint(threads), C.uintptr_t(arg)))
}

func (m *multiThreadSuite) MultiThreadNumCPUs() (int, ofx.Status) {
	var n C.uint
	st := C.ofxgo_multi_thread_num_cpus(m.s, &n)
	return int(n), status(st)
}

func (m *multiThreadSuite) MultiThreadIndex() (int, ofx.Status) {
	var index C.uint
	st := C.ofxgo_multi_thread_index(m.s, &index)
	return int(index), status(st)
}

func (m *multiThreadSuite) MultiThreadIsSpawnedThread() bool {
	return C.ofxgo_multi_thread_is_spawned(m.s) != 0
}

func (m *multiThreadSuite) MutexCreate(lockCount int) (ofx.MutexHandle, ofx.Status) {
	var h C.OfxMutexHandle
	st := C.ofxgo_mutex_create(m.s, &h, C.int(lockCount))
	return ofx.MutexHandle(unsafe.Pointer(h)), status(st)
}

func (m *multiThreadSuite) MutexDestroy(h ofx.MutexHandle) ofx.Status {
	return status(C.ofxgo_mutex_destroy(m.s, mutex(h)))
}

func (m *multiThreadSuite) MutexLock(h ofx.MutexHandle) ofx.Status {
	return status(C.ofxgo_mutex_lock(m.s, mutex(h)))
}

func (m *multiThreadSuite) MutexUnLock(h ofx.MutexHandle) ofx.Status {
	return status(C.ofxgo_mutex_unlock(m.s, mutex(h)))
}

func (m *multiThreadSuite) MutexTryLock(h ofx.MutexHandle) ofx.Status {
	return status(C.ofxgo_mutex_try_lock(m.s, mutex(h)))
}

// Message suites

type messageSuite struct{ s *C.OfxMessageSuiteV1 }

func (m *messageSuite) Message(h ofx.ImageEffectHandle, kind ofx.MessageType, id, text string) ofx.Status {
	ckind, freeKind := cString(string(kind))
	defer freeKind()
	cid, freeID := cOptional(id)
	defer freeID()
	ctext, freeText := cString(text)
	defer freeText()
	return status(C.ofxgo_message(m.s, effect(h), ckind, cid, ctext))
}

type messageSuiteV2 struct{ s *C.OfxMessageSuiteV2 }

func (m *messageSuiteV2) Message(h ofx.ImageEffectHandle, kind ofx.MessageType, id, text string) ofx.Status {
	ckind, freeKind := cString(string(kind))
	defer freeKind()
	cid, freeID := cOptional(id)
	defer freeID()
	ctext, freeText := cString(text)
	defer freeText()
	return status(C.ofxgo_message_v2(m.s, effect(h), ckind, cid, ctext))
}

func (m *messageSuiteV2) SetPersistentMessage(h ofx.ImageEffectHandle, kind ofx.MessageType, id, text string) ofx.Status {
	ckind, freeKind := cString(string(kind))
	defer freeKind()
	cid, freeID := cOptional(id)
	defer freeID()
	ctext, freeText := cString(text)
	defer freeText()
	return status(C.ofxgo_set_persistent_message(m.s, effect(h), ckind, cid, ctext))
}

func (m *messageSuiteV2) ClearPersistentMessage(h ofx.ImageEffectHandle) ofx.Status {
	return status(C.ofxgo_clear_persistent_message(m.s, effect(h)))
}

// Progress suites

type progressSuite struct{ s *C.OfxProgressSuiteV1 }

func (p *progressSuite) ProgressStart(h ofx.ImageEffectHandle, label string) ofx.Status {
	clabel, free := cString(label)
	defer free()
	return status(C.ofxgo_progress_start(p.s, effect(h), clabel))
}

func (p *progressSuite) ProgressUpdate(h ofx.ImageEffectHandle, progress float64) ofx.Status {
	return status(C.ofxgo_progress_update(p.s, effect(h), C.double(progress)))
}

func (p *progressSuite) ProgressEnd(h ofx.ImageEffectHandle) ofx.Status {
	return status(C.ofxgo_progress_end(p.s, effect(h)))
}

type progressSuiteV2 struct{ s *C.OfxProgressSuiteV2 }

func (p *progressSuiteV2) ProgressStartWithID(h ofx.ImageEffectHandle, label, messageID string) ofx.Status {
	clabel, free := cString(label)
	defer free()
	cid, freeID := cOptional(messageID)
	defer freeID()
	return status(C.ofxgo_progress_v2_start(p.s, effect(h), clabel, cid))
}

func (p *progressSuiteV2) ProgressUpdate(h ofx.ImageEffectHandle, progress float64) ofx.Status {
	return status(C.ofxgo_progress_v2_update(p.s, effect(h), C.double(progress)))
}

func (p *progressSuiteV2) ProgressEnd(h ofx.ImageEffectHandle) ofx.Status {
	return status(C.ofxgo_progress_v2_end(p.s, effect(h)))
}

// Timeline suite

type timeLineSuite struct{ s *C.OfxTimeLineSuiteV1 }

func (tl *timeLineSuite) GetTime(h ofx.ImageEffectHandle) (ofx.Time, ofx.Status) {
	var t C.double
	st := C.ofxgo_timeline_get_time(tl.s, effect(h), &t)
	return ofx.Time(t), status(st)
}

func (tl *timeLineSuite) GotoTime(h ofx.ImageEffectHandle, t ofx.Time) ofx.Status {
	return status(C.ofxgo_timeline_goto_time(tl.s, effect(h), C.double(t)))
}

func (tl *timeLineSuite) GetTimeBounds(h ofx.ImageEffectHandle) (ofx.Time, ofx.Time, ofx.Status) {
	var first, last C.double
	st := C.ofxgo_timeline_get_bounds(tl.s, effect(h), &first, &last)
	return ofx.Time(first), ofx.Time(last), status(st)
}

// Parametric parameter suite

type parametricSuite struct{ s *C.OfxParametricParameterSuiteV1 }

func (p *parametricSuite) ParametricParamGetValue(h ofx.ParamHandle, curve int, t ofx.Time, x float64) (float64, ofx.Status) {
	var v C.double
	st := C.ofxgo_parametric_get_value(p.s, param(h), C.int(curve), C.OfxTime(t), C.double(x), &v)
	return float64(v), status(st)
}

func (p *parametricSuite) ParametricParamGetNControlPoints(h ofx.ParamHandle, curve int, t ofx.Time) (int, ofx.Status) {
	var n C.int
	st := C.ofxgo_parametric_get_n_points(p.s, param(h), C.int(curve), C.OfxTime(t), &n)
	return int(n), status(st)
}

func (p *parametricSuite) ParametricParamGetNthControlPoint(h ofx.ParamHandle, curve int, t ofx.Time, nth int) (float64, float64, ofx.Status) {
	var key, value C.double
	st := C.ofxgo_parametric_get_nth_point(p.s, param(h), C.int(curve), C.OfxTime(t), C.int(nth), &key, &value)
	return float64(key), float64(value), status(st)
}

func (p *parametricSuite) ParametricParamSetNthControlPoint(h ofx.ParamHandle, curve int, t ofx.Time, nth int, key, value float64, addKey bool) ofx.Status {
	return status(C.ofxgo_parametric_set_nth_point(p.s, param(h), C.int(curve), C.OfxTime(t), C.int(nth),
		C.double(key), C.double(value), cBool(addKey)))
}

func (p *parametricSuite) ParametricParamAddControlPoint(h ofx.ParamHandle, curve int, t ofx.Time, key, value float64, addKey bool) ofx.Status {
	return status(C.ofxgo_parametric_add_point(p.s, param(h), C.int(curve), C.OfxTime(t),
		C.double(key), C.double(value), cBool(addKey)))
}

func (p *parametricSuite) ParametricParamDeleteControlPoint(h ofx.ParamHandle, curve int, nth int) ofx.Status {
	return status(C.ofxgo_parametric_delete_point(p.s, param(h), C.int(curve), C.int(nth)))
}

func (p *parametricSuite) ParametricParamDeleteAllControlPoints(h ofx.ParamHandle, curve int) ofx.Status {
	return status(C.ofxgo_parametric_delete_all(p.s, param(h), C.int(curve)))
}

// OpenGL render suite

type openGLSuite struct{ s *C.OfxImageEffectOpenGLRenderSuiteV1 }

func (g *openGLSuite) ClipLoadTexture(c ofx.ImageClipHandle, t ofx.Time, format ofx.BitDepth, region *ofx.RectD) (ofx.PropertySetHandle, ofx.Status) {
	cformat, free := cOptional(string(format))
	defer free()
	var out C.OfxPropertySetHandle
	st := C.ofxgo_gl_load_texture(g.s, clip(c), C.OfxTime(t), cformat, cRect(region), &out)
	return ofx.PropertySetHandle(unsafe.Pointer(out)), status(st)
}

func (g *openGLSuite) ClipFreeTexture(texture ofx.PropertySetHandle) ofx.Status {
	return status(C.ofxgo_gl_free_texture(g.s, props(texture)))
}

func (g *openGLSuite) FlushResources() ofx.Status {
	return status(C.ofxgo_gl_flush(g.s))
}
