package bridge

// #include "bridge.h"
import "C"

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// host is the descriptor the host passes to setHost.
type host struct {
	c *C.OfxHost
}

func newHost(c *C.OfxHost) ofx.Host {
	if c == nil {
		return nil
	}
	return &host{c: c}
}

func (h *host) Properties() ofx.PropertySetHandle {
	return ofx.PropertySetHandle(unsafe.Pointer(h.c.host))
}

// FetchSuite asks the host for a suite and wraps the function table in the
// matching ofx interface. Suites ofxgo has no binding for are reported
// missing.
func (h *host) FetchSuite(name string, version int) any {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p := C.ofxgo_fetch_suite(h.c, cname, C.int(version))
	if p == nil {
		return nil
	}

	switch {
	case name == ofx.SuiteProperty && version == 1:
		return &propertySuite{s: (*C.OfxPropertySuiteV1)(p)}
	case name == ofx.SuiteImageEffect && version == 1:
		return &imageEffectSuite{s: (*C.OfxImageEffectSuiteV1)(p)}
	case name == ofx.SuiteParameter && version == 1:
		return &parameterSuite{s: (*C.OfxParameterSuiteV1)(p)}
	case name == ofx.SuiteMemory && version == 1:
		return &memorySuite{s: (*C.OfxMemorySuiteV1)(p)}
	case name == ofx.SuiteMultiThread && version == 1:
		return &multiThreadSuite{s: (*C.OfxMultiThreadSuiteV1)(p)}
	case name == ofx.SuiteMessage && version == 1:
		return &messageSuite{s: (*C.OfxMessageSuiteV1)(p)}
	case name == ofx.SuiteMessage && version == 2:
		return &messageSuiteV2{s: (*C.OfxMessageSuiteV2)(p)}
	case name == ofx.SuiteProgress && version == 1:
		return &progressSuite{s: (*C.OfxProgressSuiteV1)(p)}
	case name == ofx.SuiteProgress && version == 2:
		return &progressSuiteV2{s: (*C.OfxProgressSuiteV2)(p)}
	case name == ofx.SuiteTimeLine && version == 1:
		return &timeLineSuite{s: (*C.OfxTimeLineSuiteV1)(p)}
	case name == ofx.SuiteParametricParameter && version == 1:
		return &parametricSuite{s: (*C.OfxParametricParameterSuiteV1)(p)}
	case name == ofx.SuiteImageEffectOpenGLRender && version == 1:
		return &openGLSuite{s: (*C.OfxImageEffectOpenGLRenderSuiteV1)(p)}
	}
	return nil
}

// cString converts s for the duration of a call; the returned func frees it.
func cString(s string) (*C.char, func()) {
	cs := C.CString(s)
	return cs, func() { C.free(unsafe.Pointer(cs)) }
}

func status(st C.OfxStatus) ofx.Status {
	return ofx.Status(st)
}

func cRect(r *ofx.RectD) *C.OfxRectD {
	if r == nil {
		return nil
	}
	return &C.OfxRectD{x1: C.double(r.X1), y1: C.double(r.Y1), x2: C.double(r.X2), y2: C.double(r.Y2)}
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
