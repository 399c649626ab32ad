// Package ofxtest provides an in-memory host for exercising plugins without a
// real OpenFX application. Every suite is implemented over plain Go maps, calls
// are counted by their C function name, and any call can be forced to fail.
package ofxtest

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// ThreadEntry is invoked by the fake multithread suite once per thread.
type ThreadEntry func(arg uintptr, index, count int)

// Host is a fake OpenFX host.
type Host struct {
	mu       sync.Mutex
	props    *PropSet
	missing  map[string]bool
	failures map[string]ofx.Status
	calls    map[string]int

	sets      map[unsafe.Pointer]*PropSet
	effects   map[unsafe.Pointer]*Effect
	clips     map[unsafe.Pointer]*Clip
	paramSets map[unsafe.Pointer]*ParamSet
	params    map[unsafe.Pointer]*Param
	images    map[unsafe.Pointer]*Image
	memory    map[uintptr][]byte
	mutexes   map[unsafe.Pointer]*Mutex

	// ThreadEntry receives multiThread calls. Nil makes multiThread fail.
	ThreadEntry ThreadEntry
	// CPUs is what multiThreadNumCPUs reports and the thread count used for
	// a multiThread request of zero.
	CPUs int

	// Timeline state.
	Time       ofx.Time
	TimeBounds [2]ofx.Time

	// Messages records every posted message.
	Messages []Message
	// Persistent holds the current persistent message per effect.
	Persistent map[ofx.ImageEffectHandle]Message
	// Progress records progress calls as "start:<label>", "update:<value>", "end".
	Progress []string
}

// Message is one message posted through a message suite.
type Message struct {
	Kind ofx.MessageType
	ID   string
	Text string
}

// Option configures a Host.
type Option func(*Host)

// WithoutSuite makes FetchSuite return nil for name at version.
func WithoutSuite(name string, version int) Option {
	return func(h *Host) {
		h.missing[suiteKey(name, version)] = true
	}
}

// WithCPUs sets the CPU count the multithread suite reports.
func WithCPUs(n int) Option {
	return func(h *Host) {
		h.CPUs = n
	}
}

func suiteKey(name string, version int) string {
	return fmt.Sprintf("%s v%d", name, version)
}

// NewHost creates a host that provides every suite.
func NewHost(opts ...Option) *Host {
	h := &Host{
		missing:    make(map[string]bool),
		failures:   make(map[string]ofx.Status),
		calls:      make(map[string]int),
		sets:       make(map[unsafe.Pointer]*PropSet),
		effects:    make(map[unsafe.Pointer]*Effect),
		clips:      make(map[unsafe.Pointer]*Clip),
		paramSets:  make(map[unsafe.Pointer]*ParamSet),
		params:     make(map[unsafe.Pointer]*Param),
		images:     make(map[unsafe.Pointer]*Image),
		memory:     make(map[uintptr][]byte),
		mutexes:    make(map[unsafe.Pointer]*Mutex),
		CPUs:       4,
		TimeBounds: [2]ofx.Time{0, 100},
		Persistent: make(map[ofx.ImageEffectHandle]Message),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.props = h.NewPropertySet()
	h.props.Set(ofx.PropType, ofx.TypeImageEffectHost)
	h.props.Set(ofx.PropName, "ofxtest")
	h.props.Set(ofx.PropLabel, "OFX Test Host")
	h.props.Set(ofx.ImageEffectHostPropIsBackground, 0)
	h.props.Set(ofx.ImageEffectPropSupportsMultipleClipDepths, 1)
	h.props.Set(ofx.ImageEffectPropSupportsTiles, 1)
	h.props.Set(ofx.ParamHostPropMaxParameters, -1)
	return h
}

// Properties implements ofx.Host.
func (h *Host) Properties() ofx.PropertySetHandle {
	return h.props.Handle()
}

// Props returns the host property set for direct inspection.
func (h *Host) Props() *PropSet {
	return h.props
}

var suiteVersions = map[string][]int{
	ofx.SuiteImageEffect:             {1},
	ofx.SuiteProperty:                {1},
	ofx.SuiteParameter:               {1},
	ofx.SuiteMemory:                  {1},
	ofx.SuiteMultiThread:             {1},
	ofx.SuiteMessage:                 {1, 2},
	ofx.SuiteProgress:                {1, 2},
	ofx.SuiteTimeLine:                {1},
	ofx.SuiteParametricParameter:     {1},
	ofx.SuiteImageEffectOpenGLRender: {1},
}

// FetchSuite implements ofx.Host.
func (h *Host) FetchSuite(name string, version int) any {
	h.count("fetchSuite")
	if h.missing[suiteKey(name, version)] {
		return nil
	}
	supported := false
	for _, v := range suiteVersions[name] {
		if v == version {
			supported = true
		}
	}
	if !supported {
		return nil
	}

	switch name {
	case ofx.SuiteImageEffect:
		return &imageEffectSuite{h}
	case ofx.SuiteProperty:
		return &propertySuite{h}
	case ofx.SuiteParameter:
		return &parameterSuite{h}
	case ofx.SuiteMemory:
		return &memorySuite{h}
	case ofx.SuiteMultiThread:
		return &multiThreadSuite{h}
	case ofx.SuiteMessage:
		return &messageSuite{h}
	case ofx.SuiteProgress:
		return &progressSuite{h}
	case ofx.SuiteTimeLine:
		return &timeLineSuite{h}
	case ofx.SuiteParametricParameter:
		return &parametricSuite{h}
	case ofx.SuiteImageEffectOpenGLRender:
		return &openGLSuite{h}
	}
	return nil
}

// Fail forces every later call to op to return status. StatOK clears it.
func (h *Host) Fail(op string, status ofx.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if status == ofx.StatOK {
		delete(h.failures, op)
		return
	}
	h.failures[op] = status
}

// Calls returns how many times op was called.
func (h *Host) Calls(op string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[op]
}

// begin counts a call and returns the forced status for op, if any.
func (h *Host) begin(op string) ofx.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls[op]++
	if st, ok := h.failures[op]; ok {
		return st
	}
	return ofx.StatOK
}

func (h *Host) count(op string) {
	h.mu.Lock()
	h.calls[op]++
	h.mu.Unlock()
}

// NewPropertySet creates an empty property set known to the property suite.
func (h *Host) NewPropertySet() *PropSet {
	p := &PropSet{values: make(map[string][]any)}
	h.mu.Lock()
	h.sets[unsafe.Pointer(p)] = p
	h.mu.Unlock()
	return p
}

func (h *Host) propSet(handle ofx.PropertySetHandle) *PropSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sets[unsafe.Pointer(handle)]
}

// LiveImages returns how many images and textures are fetched but not
// released.
func (h *Host) LiveImages() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.images)
}

// LiveAllocations returns how many memory-suite blocks are outstanding.
func (h *Host) LiveAllocations() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.memory)
}

var (
	_ ofx.Host                           = (*Host)(nil)
	_ ofx.ImageEffectSuiteV1             = (*imageEffectSuite)(nil)
	_ ofx.PropertySuiteV1                = (*propertySuite)(nil)
	_ ofx.ParameterSuiteV1               = (*parameterSuite)(nil)
	_ ofx.MemorySuiteV1                  = (*memorySuite)(nil)
	_ ofx.MultiThreadSuiteV1             = (*multiThreadSuite)(nil)
	_ ofx.MessageSuiteV2                 = (*messageSuite)(nil)
	_ ofx.ProgressSuiteV1                = (*progressSuite)(nil)
	_ ofx.ProgressSuiteV2                = (*progressSuite)(nil)
	_ ofx.TimeLineSuiteV1                = (*timeLineSuite)(nil)
	_ ofx.ParametricParameterSuiteV1     = (*parametricSuite)(nil)
	_ ofx.ImageEffectOpenGLRenderSuiteV1 = (*openGLSuite)(nil)
)
