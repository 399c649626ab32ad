// Package suite fetches and holds the function tables a host provides.
//
// A Table is built once per Load and never mutated afterwards, so every
// wrapper created from it can keep a plain pointer and share it freely across
// goroutines. Accessors on a nil *Table report SuiteNotInitialized instead of
// dereferencing nothing, which lets wrappers exist before Load has run.
package suite

import (
	"fmt"
	"strings"

	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Table holds every fetched suite.
type Table struct {
	host ofx.Host

	imageEffect ofx.ImageEffectSuiteV1
	property    ofx.PropertySuiteV1
	parameter   ofx.ParameterSuiteV1
	memory      ofx.MemorySuiteV1
	multiThread ofx.MultiThreadSuiteV1
	message     ofx.MessageSuiteV1
	progress    ofx.ProgressSuiteV1
	timeLine    ofx.TimeLineSuiteV1

	messageV2  ofx.MessageSuiteV2
	progressV2 ofx.ProgressSuiteV2
	parametric ofx.ParametricParameterSuiteV1
	openGL     ofx.ImageEffectOpenGLRenderSuiteV1
}

type loader struct {
	host    ofx.Host
	missing []string
}

func required[S any](l *loader, name string, version int) S {
	s, ok := fetch[S](l.host, name, version)
	if !ok {
		l.missing = append(l.missing, fmt.Sprintf("%s v%d", name, version))
	}
	return s
}

func fetch[S any](host ofx.Host, name string, version int) (S, bool) {
	var zero S
	raw := host.FetchSuite(name, version)
	if raw == nil {
		return zero, false
	}
	s, ok := raw.(S)
	if !ok {
		return zero, false
	}
	return s, true
}

// Load fetches every required suite from host and records which optional
// suites are available. Any missing required suite fails the whole load and
// no table is returned.
func Load(host ofx.Host) (*Table, error) {
	if host == nil {
		return nil, ofx.NewError(ofx.KindHostNotReady, "load suites: no host descriptor")
	}

	l := &loader{host: host}
	t := &Table{host: host}
	t.imageEffect = required[ofx.ImageEffectSuiteV1](l, ofx.SuiteImageEffect, 1)
	t.property = required[ofx.PropertySuiteV1](l, ofx.SuiteProperty, 1)
	t.parameter = required[ofx.ParameterSuiteV1](l, ofx.SuiteParameter, 1)
	t.memory = required[ofx.MemorySuiteV1](l, ofx.SuiteMemory, 1)
	t.multiThread = required[ofx.MultiThreadSuiteV1](l, ofx.SuiteMultiThread, 1)
	t.message = required[ofx.MessageSuiteV1](l, ofx.SuiteMessage, 1)
	t.progress = required[ofx.ProgressSuiteV1](l, ofx.SuiteProgress, 1)
	t.timeLine = required[ofx.TimeLineSuiteV1](l, ofx.SuiteTimeLine, 1)

	if len(l.missing) > 0 {
		return nil, oops.In("suite").
			Code(string(ofx.KindInvalidSuite)).
			With("missing", l.missing).
			Errorf("host is missing required suites: %s", strings.Join(l.missing, ", "))
	}

	t.messageV2, _ = fetch[ofx.MessageSuiteV2](host, ofx.SuiteMessage, 2)
	t.progressV2, _ = fetch[ofx.ProgressSuiteV2](host, ofx.SuiteProgress, 2)
	t.parametric, _ = fetch[ofx.ParametricParameterSuiteV1](host, ofx.SuiteParametricParameter, 1)
	t.openGL, _ = fetch[ofx.ImageEffectOpenGLRenderSuiteV1](host, ofx.SuiteImageEffectOpenGLRender, 1)

	return t, nil
}

// Optional lists the optional suites this table holds.
func (t *Table) Optional() []string {
	if t == nil {
		return nil
	}
	var names []string
	if t.messageV2 != nil {
		names = append(names, ofx.SuiteMessage+" v2")
	}
	if t.progressV2 != nil {
		names = append(names, ofx.SuiteProgress+" v2")
	}
	if t.parametric != nil {
		names = append(names, ofx.SuiteParametricParameter)
	}
	if t.openGL != nil {
		names = append(names, ofx.SuiteImageEffectOpenGLRender)
	}
	return names
}

func notInitialized(name string) error {
	return ofx.NewError(ofx.KindSuiteNotInitialized, "%s used before load", name)
}

func unavailable(name string) error {
	return ofx.NewError(ofx.KindInvalidSuite, "host does not provide %s", name)
}

// Host returns the host the table was loaded from.
func (t *Table) Host() (ofx.Host, error) {
	if t == nil {
		return nil, ofx.NewError(ofx.KindHostNotReady, "host used before load")
	}
	return t.host, nil
}

// ImageEffect returns the image-effect suite.
func (t *Table) ImageEffect() (ofx.ImageEffectSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteImageEffect)
	}
	return t.imageEffect, nil
}

// Property returns the property suite.
func (t *Table) Property() (ofx.PropertySuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteProperty)
	}
	return t.property, nil
}

// Parameter returns the parameter suite.
func (t *Table) Parameter() (ofx.ParameterSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteParameter)
	}
	return t.parameter, nil
}

// Memory returns the memory suite.
func (t *Table) Memory() (ofx.MemorySuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteMemory)
	}
	return t.memory, nil
}

// MultiThread returns the multithread suite.
func (t *Table) MultiThread() (ofx.MultiThreadSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteMultiThread)
	}
	return t.multiThread, nil
}

// Message returns the v1 message suite.
func (t *Table) Message() (ofx.MessageSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteMessage)
	}
	return t.message, nil
}

// Progress returns the v1 progress suite.
func (t *Table) Progress() (ofx.ProgressSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteProgress)
	}
	return t.progress, nil
}

// TimeLine returns the timeline suite.
func (t *Table) TimeLine() (ofx.TimeLineSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteTimeLine)
	}
	return t.timeLine, nil
}

// MessageV2 returns the v2 message suite, or InvalidSuite if the host lacks it.
func (t *Table) MessageV2() (ofx.MessageSuiteV2, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteMessage + " v2")
	}
	if t.messageV2 == nil {
		return nil, unavailable(ofx.SuiteMessage + " v2")
	}
	return t.messageV2, nil
}

// ProgressV2 returns the v2 progress suite, or InvalidSuite if the host lacks it.
func (t *Table) ProgressV2() (ofx.ProgressSuiteV2, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteProgress + " v2")
	}
	if t.progressV2 == nil {
		return nil, unavailable(ofx.SuiteProgress + " v2")
	}
	return t.progressV2, nil
}

// Parametric returns the parametric parameter suite, or InvalidSuite if the
// host lacks it.
func (t *Table) Parametric() (ofx.ParametricParameterSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteParametricParameter)
	}
	if t.parametric == nil {
		return nil, unavailable(ofx.SuiteParametricParameter)
	}
	return t.parametric, nil
}

// OpenGL returns the OpenGL render suite, or InvalidSuite if the host lacks it.
func (t *Table) OpenGL() (ofx.ImageEffectOpenGLRenderSuiteV1, error) {
	if t == nil {
		return nil, notInitialized(ofx.SuiteImageEffectOpenGLRender)
	}
	if t.openGL == nil {
		return nil, unavailable(ofx.SuiteImageEffectOpenGLRender)
	}
	return t.openGL, nil
}
