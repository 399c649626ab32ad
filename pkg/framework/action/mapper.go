package action

import (
	"unicode/utf8"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Raw is an action exactly as the host delivered it to mainEntry.
type Raw struct {
	Name   string
	Handle ofx.ImageEffectHandle
	In     ofx.PropertySetHandle
	Out    ofx.PropertySetHandle
}

// Mapper resolves raw action calls against the action table.
type Mapper struct {
	global      map[string]Row
	instance    map[string]Row
	unsupported map[string]struct{}
}

// NewMapper indexes the action table.
func NewMapper() *Mapper {
	m := &Mapper{
		global:      make(map[string]Row),
		instance:    make(map[string]Row),
		unsupported: make(map[string]struct{}, len(unsupported)),
	}
	for _, r := range rows {
		if r.Scope == Instance {
			m.instance[r.Name] = r
		} else {
			m.global[r.Name] = r
		}
	}
	for _, name := range unsupported {
		m.unsupported[name] = struct{}{}
	}
	return m
}

// Lookup finds the row for name, global actions first.
func (m *Mapper) Lookup(name string) (Row, bool) {
	if r, ok := m.global[name]; ok {
		return r, true
	}
	r, ok := m.instance[name]
	return r, ok
}

// Map converts raw into its typed Action. suites may be nil before Load; the
// wrappers then report SuiteNotInitialized on first use instead of failing
// the mapping.
func (m *Mapper) Map(suites *suite.Table, raw Raw) (Action, error) {
	if !utf8.ValidString(raw.Name) {
		return nil, ofx.NewError(ofx.KindStringConversion, "action name %q is not valid UTF-8", raw.Name)
	}

	r, ok := m.Lookup(raw.Name)
	if !ok {
		if _, known := m.unsupported[raw.Name]; known {
			return nil, ofx.NewError(ofx.KindInvalidAction, "action %s is not supported", raw.Name)
		}
		return nil, ofx.NewError(ofx.KindInvalidAction, "unknown action %q", raw.Name)
	}

	var t target
	if r.carriesEffect() {
		if raw.Handle == nil {
			return nil, ofx.NewError(ofx.KindInvalidHandle, "%s: nil effect handle", raw.Name)
		}
		t.Effect = handle.NewImageEffect(raw.Handle, suites)
	}

	ps, _ := suites.Property()
	var in, out property.Set
	if r.Args&InArgs != 0 {
		in = property.NewSet(raw.In, ps)
	}
	if r.Args&OutArgs != 0 {
		out = property.NewSet(raw.Out, ps)
	}
	return r.build(t, in, out), nil
}
