package ofxtest

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// PropSet is an in-memory property set. Values are stored as int, float64,
// string or uintptr; bools passed to Set are stored as 0 or 1.
type PropSet struct {
	mu     sync.Mutex
	values map[string][]any
}

// Handle returns the opaque handle the plugin sees.
func (p *PropSet) Handle() ofx.PropertySetHandle {
	return ofx.PropertySetHandle(unsafe.Pointer(p))
}

// Set replaces every value of name.
func (p *PropSet) Set(name string, values ...any) *PropSet {
	normalized := make([]any, len(values))
	for i, v := range values {
		normalized[i] = normalize(v)
	}
	p.mu.Lock()
	p.values[name] = normalized
	p.mu.Unlock()
	return p
}

func normalize(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	if u, ok := v.(uintptr); ok {
		return u
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// Has reports whether name is set.
func (p *PropSet) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[name]
	return ok
}

// Values returns a copy of the values of name.
func (p *PropSet) Values(name string) []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]any(nil), p.values[name]...)
}

// Int returns value i of name, or 0.
func (p *PropSet) Int(name string, i int) int {
	v, _ := p.value(name, i).(int)
	return v
}

// Double returns value i of name, or 0.
func (p *PropSet) Double(name string, i int) float64 {
	v, _ := p.value(name, i).(float64)
	return v
}

// String returns value i of name, or "".
func (p *PropSet) String(name string, i int) string {
	v, _ := p.value(name, i).(string)
	return v
}

// Pointer returns value i of name, or 0.
func (p *PropSet) Pointer(name string, i int) uintptr {
	v, _ := p.value(name, i).(uintptr)
	return v
}

func (p *PropSet) value(name string, i int) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	vs := p.values[name]
	if i < 0 || i >= len(vs) {
		return nil
	}
	return vs[i]
}

func (p *PropSet) set(name string, index int, v any) ofx.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	vs := p.values[name]
	if index < 0 || index > len(vs) {
		return ofx.StatErrBadIndex
	}
	if len(vs) > 0 {
		if !sameKind(vs[0], v) {
			return ofx.StatErrValue
		}
	}
	if index == len(vs) {
		p.values[name] = append(vs, v)
		return ofx.StatOK
	}
	vs[index] = v
	return ofx.StatOK
}

func get[T any](p *PropSet, name string, index int) (T, ofx.Status) {
	var zero T
	p.mu.Lock()
	defer p.mu.Unlock()
	vs, ok := p.values[name]
	if !ok {
		return zero, ofx.StatErrUnknown
	}
	if index < 0 || index >= len(vs) {
		return zero, ofx.StatErrBadIndex
	}
	v, ok := vs[index].(T)
	if !ok {
		return zero, ofx.StatErrValue
	}
	return v, ofx.StatOK
}

func sameKind(a, b any) bool {
	switch a.(type) {
	case int:
		_, ok := b.(int)
		return ok
	case float64:
		_, ok := b.(float64)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case uintptr:
		_, ok := b.(uintptr)
		return ok
	}
	return false
}

type propertySuite struct{ h *Host }

func (s *propertySuite) lookup(op string, handle ofx.PropertySetHandle) (*PropSet, ofx.Status) {
	if st := s.h.begin(op); st != ofx.StatOK {
		return nil, st
	}
	p := s.h.propSet(handle)
	if p == nil {
		return nil, ofx.StatErrBadHandle
	}
	return p, ofx.StatOK
}

func (s *propertySuite) PropSetPointer(h ofx.PropertySetHandle, name string, index int, v uintptr) ofx.Status {
	p, st := s.lookup("propSetPointer", h)
	if st != ofx.StatOK {
		return st
	}
	return p.set(name, index, v)
}

func (s *propertySuite) PropSetString(h ofx.PropertySetHandle, name string, index int, v string) ofx.Status {
	p, st := s.lookup("propSetString", h)
	if st != ofx.StatOK {
		return st
	}
	return p.set(name, index, v)
}

func (s *propertySuite) PropSetDouble(h ofx.PropertySetHandle, name string, index int, v float64) ofx.Status {
	p, st := s.lookup("propSetDouble", h)
	if st != ofx.StatOK {
		return st
	}
	return p.set(name, index, v)
}

func (s *propertySuite) PropSetInt(h ofx.PropertySetHandle, name string, index int, v int) ofx.Status {
	p, st := s.lookup("propSetInt", h)
	if st != ofx.StatOK {
		return st
	}
	return p.set(name, index, v)
}

func (s *propertySuite) PropGetPointer(h ofx.PropertySetHandle, name string, index int) (uintptr, ofx.Status) {
	p, st := s.lookup("propGetPointer", h)
	if st != ofx.StatOK {
		return 0, st
	}
	return get[uintptr](p, name, index)
}

func (s *propertySuite) PropGetString(h ofx.PropertySetHandle, name string, index int) (string, ofx.Status) {
	p, st := s.lookup("propGetString", h)
	if st != ofx.StatOK {
		return "", st
	}
	return get[string](p, name, index)
}

func (s *propertySuite) PropGetDouble(h ofx.PropertySetHandle, name string, index int) (float64, ofx.Status) {
	p, st := s.lookup("propGetDouble", h)
	if st != ofx.StatOK {
		return 0, st
	}
	return get[float64](p, name, index)
}

func (s *propertySuite) PropGetInt(h ofx.PropertySetHandle, name string, index int) (int, ofx.Status) {
	p, st := s.lookup("propGetInt", h)
	if st != ofx.StatOK {
		return 0, st
	}
	return get[int](p, name, index)
}

func (s *propertySuite) PropReset(h ofx.PropertySetHandle, name string) ofx.Status {
	p, st := s.lookup("propReset", h)
	if st != ofx.StatOK {
		return st
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.values[name]; !ok {
		return ofx.StatErrUnknown
	}
	delete(p.values, name)
	return ofx.StatOK
}

func (s *propertySuite) PropGetDimension(h ofx.PropertySetHandle, name string) (int, ofx.Status) {
	p, st := s.lookup("propGetDimension", h)
	if st != ofx.StatOK {
		return 0, st
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	vs, ok := p.values[name]
	if !ok {
		return 0, ofx.StatErrUnknown
	}
	return len(vs), ofx.StatOK
}
