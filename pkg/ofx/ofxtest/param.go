package ofxtest

import (
	"sort"
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// ParamSet is a fake parameter set.
type ParamSet struct {
	host   *Host
	Props  *PropSet
	params map[string]*Param
	// Order lists parameter names in definition order.
	Order []string
	// Edits records "begin:<name>" and "end" calls.
	Edits []string
}

// Param is a fake parameter. Integer, boolean and choice values are stored as
// int, double values as float64 and string values as *string, where nil is
// what the host reports as a NULL string.
type Param struct {
	Name   string
	Type   ofx.ParamType
	Props  *PropSet
	value  any
	keys   map[ofx.Time]any
	curves map[int][]ControlPoint
}

// ControlPoint is one point of a parametric curve.
type ControlPoint struct {
	Key, Value float64
}

// NewParamSet creates an empty parameter set.
func (h *Host) NewParamSet() *ParamSet {
	ps := &ParamSet{
		host:   h,
		Props:  h.NewPropertySet(),
		params: make(map[string]*Param),
	}
	h.mu.Lock()
	h.paramSets[unsafe.Pointer(ps)] = ps
	h.mu.Unlock()
	return ps
}

// Handle returns the opaque parameter set handle.
func (ps *ParamSet) Handle() ofx.ParamSetHandle {
	return ofx.ParamSetHandle(unsafe.Pointer(ps))
}

// Define adds a parameter directly, as a host would for an instance.
func (ps *ParamSet) Define(paramType ofx.ParamType, name string) *Param {
	p := &Param{
		Name:   name,
		Type:   paramType,
		Props:  ps.host.NewPropertySet(),
		keys:   make(map[ofx.Time]any),
		curves: make(map[int][]ControlPoint),
	}
	p.Props.Set(ofx.PropType, ofx.TypeParameter)
	p.Props.Set(ofx.PropName, name)
	p.Props.Set(ofx.ParamPropType, paramType)
	switch paramType {
	case ofx.ParamTypeInteger, ofx.ParamTypeBoolean, ofx.ParamTypeChoice:
		p.value = 0
	case ofx.ParamTypeDouble:
		p.value = 0.0
	case ofx.ParamTypeString:
		p.value = (*string)(nil)
	}

	ps.host.mu.Lock()
	ps.params[name] = p
	ps.Order = append(ps.Order, name)
	ps.host.params[unsafe.Pointer(p)] = p
	ps.host.mu.Unlock()
	return p
}

// Param returns the named parameter or nil.
func (ps *ParamSet) Param(name string) *Param {
	ps.host.mu.Lock()
	defer ps.host.mu.Unlock()
	return ps.params[name]
}

// Handle returns the opaque parameter handle.
func (p *Param) Handle() ofx.ParamHandle {
	return ofx.ParamHandle(unsafe.Pointer(p))
}

// Raw returns the stored value.
func (p *Param) Raw() any {
	return p.value
}

// SetRaw replaces the stored value.
func (p *Param) SetRaw(v any) {
	p.value = v
}

// Curve returns the control points of curve.
func (p *Param) Curve(curve int) []ControlPoint {
	return append([]ControlPoint(nil), p.curves[curve]...)
}

func (p *Param) sortedKeys() []ofx.Time {
	keys := make([]ofx.Time, 0, len(p.keys))
	for k := range p.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (h *Host) paramSet(handle ofx.ParamSetHandle) *ParamSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paramSets[unsafe.Pointer(handle)]
}

func (h *Host) param(handle ofx.ParamHandle) *Param {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.params[unsafe.Pointer(handle)]
}

type parameterSuite struct{ h *Host }

func (s *parameterSuite) lookup(op string, handle ofx.ParamHandle) (*Param, ofx.Status) {
	if st := s.h.begin(op); st != ofx.StatOK {
		return nil, st
	}
	p := s.h.param(handle)
	if p == nil {
		return nil, ofx.StatErrBadHandle
	}
	return p, ofx.StatOK
}

func (s *parameterSuite) ParamDefine(set ofx.ParamSetHandle, paramType ofx.ParamType, name string) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("paramDefine"); st != ofx.StatOK {
		return nil, st
	}
	ps := s.h.paramSet(set)
	if ps == nil {
		return nil, ofx.StatErrBadHandle
	}
	if ps.Param(name) != nil {
		return nil, ofx.StatErrExists
	}
	return ps.Define(paramType, name).Props.Handle(), ofx.StatOK
}

func (s *parameterSuite) ParamGetHandle(set ofx.ParamSetHandle, name string) (ofx.ParamHandle, ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("paramGetHandle"); st != ofx.StatOK {
		return nil, nil, st
	}
	ps := s.h.paramSet(set)
	if ps == nil {
		return nil, nil, ofx.StatErrBadHandle
	}
	p := ps.Param(name)
	if p == nil {
		return nil, nil, ofx.StatErrUnknown
	}
	return p.Handle(), p.Props.Handle(), ofx.StatOK
}

func (s *parameterSuite) ParamSetGetPropertySet(set ofx.ParamSetHandle) (ofx.PropertySetHandle, ofx.Status) {
	if st := s.h.begin("paramSetGetPropertySet"); st != ofx.StatOK {
		return nil, st
	}
	ps := s.h.paramSet(set)
	if ps == nil {
		return nil, ofx.StatErrBadHandle
	}
	return ps.Props.Handle(), ofx.StatOK
}

func (s *parameterSuite) ParamGetPropertySet(param ofx.ParamHandle) (ofx.PropertySetHandle, ofx.Status) {
	p, st := s.lookup("paramGetPropertySet", param)
	if st != ofx.StatOK {
		return nil, st
	}
	return p.Props.Handle(), ofx.StatOK
}

func valueAs[T any](v any) (T, ofx.Status) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, ofx.StatErrValue
	}
	return t, ofx.StatOK
}

func (s *parameterSuite) valueAt(op string, param ofx.ParamHandle, t *ofx.Time) (any, ofx.Status) {
	p, st := s.lookup(op, param)
	if st != ofx.StatOK {
		return nil, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	if t != nil {
		if v, ok := p.keys[*t]; ok {
			return v, ofx.StatOK
		}
	}
	return p.value, ofx.StatOK
}

func (s *parameterSuite) setValue(op string, param ofx.ParamHandle, t *ofx.Time, v any) ofx.Status {
	p, st := s.lookup(op, param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	if !sameParamKind(p.value, v) {
		return ofx.StatErrValue
	}
	if t != nil {
		p.keys[*t] = v
		return ofx.StatOK
	}
	p.value = v
	return ofx.StatOK
}

func sameParamKind(current, v any) bool {
	switch current.(type) {
	case int:
		_, ok := v.(int)
		return ok
	case float64:
		_, ok := v.(float64)
		return ok
	case *string:
		_, ok := v.(*string)
		return ok
	}
	return false
}

func (s *parameterSuite) ParamGetValueInt(param ofx.ParamHandle) (int, ofx.Status) {
	v, st := s.valueAt("paramGetValue", param, nil)
	if st != ofx.StatOK {
		return 0, st
	}
	return valueAs[int](v)
}

func (s *parameterSuite) ParamGetValueDouble(param ofx.ParamHandle) (float64, ofx.Status) {
	v, st := s.valueAt("paramGetValue", param, nil)
	if st != ofx.StatOK {
		return 0, st
	}
	return valueAs[float64](v)
}

func (s *parameterSuite) ParamGetValueString(param ofx.ParamHandle) (*string, ofx.Status) {
	v, st := s.valueAt("paramGetValue", param, nil)
	if st != ofx.StatOK {
		return nil, st
	}
	return valueAs[*string](v)
}

func (s *parameterSuite) ParamGetValueAtTimeInt(param ofx.ParamHandle, t ofx.Time) (int, ofx.Status) {
	v, st := s.valueAt("paramGetValueAtTime", param, &t)
	if st != ofx.StatOK {
		return 0, st
	}
	return valueAs[int](v)
}

func (s *parameterSuite) ParamGetValueAtTimeDouble(param ofx.ParamHandle, t ofx.Time) (float64, ofx.Status) {
	v, st := s.valueAt("paramGetValueAtTime", param, &t)
	if st != ofx.StatOK {
		return 0, st
	}
	return valueAs[float64](v)
}

func (s *parameterSuite) ParamGetValueAtTimeString(param ofx.ParamHandle, t ofx.Time) (*string, ofx.Status) {
	v, st := s.valueAt("paramGetValueAtTime", param, &t)
	if st != ofx.StatOK {
		return nil, st
	}
	return valueAs[*string](v)
}

func (s *parameterSuite) ParamSetValueInt(param ofx.ParamHandle, v int) ofx.Status {
	return s.setValue("paramSetValue", param, nil, v)
}

func (s *parameterSuite) ParamSetValueDouble(param ofx.ParamHandle, v float64) ofx.Status {
	return s.setValue("paramSetValue", param, nil, v)
}

func (s *parameterSuite) ParamSetValueString(param ofx.ParamHandle, v string) ofx.Status {
	return s.setValue("paramSetValue", param, nil, &v)
}

func (s *parameterSuite) ParamSetValueAtTimeInt(param ofx.ParamHandle, t ofx.Time, v int) ofx.Status {
	return s.setValue("paramSetValueAtTime", param, &t, v)
}

func (s *parameterSuite) ParamSetValueAtTimeDouble(param ofx.ParamHandle, t ofx.Time, v float64) ofx.Status {
	return s.setValue("paramSetValueAtTime", param, &t, v)
}

func (s *parameterSuite) ParamSetValueAtTimeString(param ofx.ParamHandle, t ofx.Time, v string) ofx.Status {
	return s.setValue("paramSetValueAtTime", param, &t, &v)
}

func (s *parameterSuite) ParamGetNumKeys(param ofx.ParamHandle) (int, ofx.Status) {
	p, st := s.lookup("paramGetNumKeys", param)
	if st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return len(p.keys), ofx.StatOK
}

func (s *parameterSuite) ParamGetKeyTime(param ofx.ParamHandle, nth int) (ofx.Time, ofx.Status) {
	p, st := s.lookup("paramGetKeyTime", param)
	if st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	keys := p.sortedKeys()
	if nth < 0 || nth >= len(keys) {
		return 0, ofx.StatErrBadIndex
	}
	return keys[nth], ofx.StatOK
}

func (s *parameterSuite) ParamGetKeyIndex(param ofx.ParamHandle, t ofx.Time, direction ofx.KeySearch) (int, ofx.Status) {
	p, st := s.lookup("paramGetKeyIndex", param)
	if st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	keys := p.sortedKeys()
	switch {
	case direction == ofx.KeySearchExact:
		for i, k := range keys {
			if k == t {
				return i, ofx.StatOK
			}
		}
	case direction < 0:
		for i := len(keys) - 1; i >= 0; i-- {
			if keys[i] < t {
				return i, ofx.StatOK
			}
		}
	default:
		for i, k := range keys {
			if k > t {
				return i, ofx.StatOK
			}
		}
	}
	return -1, ofx.StatFailed
}

func (s *parameterSuite) ParamDeleteKey(param ofx.ParamHandle, t ofx.Time) ofx.Status {
	p, st := s.lookup("paramDeleteKey", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	if _, ok := p.keys[t]; !ok {
		return ofx.StatErrBadIndex
	}
	delete(p.keys, t)
	return ofx.StatOK
}

func (s *parameterSuite) ParamDeleteAllKeys(param ofx.ParamHandle) ofx.Status {
	p, st := s.lookup("paramDeleteAllKeys", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	p.keys = make(map[ofx.Time]any)
	return ofx.StatOK
}

func (s *parameterSuite) ParamEditBegin(set ofx.ParamSetHandle, name string) ofx.Status {
	if st := s.h.begin("paramEditBegin"); st != ofx.StatOK {
		return st
	}
	ps := s.h.paramSet(set)
	if ps == nil {
		return ofx.StatErrBadHandle
	}
	s.h.mu.Lock()
	ps.Edits = append(ps.Edits, "begin:"+name)
	s.h.mu.Unlock()
	return ofx.StatOK
}

func (s *parameterSuite) ParamEditEnd(set ofx.ParamSetHandle) ofx.Status {
	if st := s.h.begin("paramEditEnd"); st != ofx.StatOK {
		return st
	}
	ps := s.h.paramSet(set)
	if ps == nil {
		return ofx.StatErrBadHandle
	}
	s.h.mu.Lock()
	ps.Edits = append(ps.Edits, "end")
	s.h.mu.Unlock()
	return ofx.StatOK
}

type parametricSuite struct{ h *Host }

func (s *parametricSuite) lookup(op string, handle ofx.ParamHandle) (*Param, ofx.Status) {
	if st := s.h.begin(op); st != ofx.StatOK {
		return nil, st
	}
	p := s.h.param(handle)
	if p == nil || p.Type != ofx.ParamTypeParametric {
		return nil, ofx.StatErrBadHandle
	}
	return p, ofx.StatOK
}

func (s *parametricSuite) ParametricParamGetValue(param ofx.ParamHandle, curve int, _ ofx.Time, x float64) (float64, ofx.Status) {
	p, st := s.lookup("parametricParamGetValue", param)
	if st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	pts := p.curves[curve]
	switch {
	case len(pts) == 0:
		return 0, ofx.StatOK
	case x <= pts[0].Key:
		return pts[0].Value, ofx.StatOK
	case x >= pts[len(pts)-1].Key:
		return pts[len(pts)-1].Value, ofx.StatOK
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].Key {
			a, b := pts[i-1], pts[i]
			f := (x - a.Key) / (b.Key - a.Key)
			return a.Value + f*(b.Value-a.Value), ofx.StatOK
		}
	}
	return pts[len(pts)-1].Value, ofx.StatOK
}

func (s *parametricSuite) ParametricParamGetNControlPoints(param ofx.ParamHandle, curve int, _ ofx.Time) (int, ofx.Status) {
	p, st := s.lookup("parametricParamGetNControlPoints", param)
	if st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return len(p.curves[curve]), ofx.StatOK
}

func (s *parametricSuite) ParametricParamGetNthControlPoint(param ofx.ParamHandle, curve int, _ ofx.Time, nth int) (float64, float64, ofx.Status) {
	p, st := s.lookup("parametricParamGetNthControlPoint", param)
	if st != ofx.StatOK {
		return 0, 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	pts := p.curves[curve]
	if nth < 0 || nth >= len(pts) {
		return 0, 0, ofx.StatErrBadIndex
	}
	return pts[nth].Key, pts[nth].Value, ofx.StatOK
}

func (s *parametricSuite) ParametricParamSetNthControlPoint(param ofx.ParamHandle, curve int, _ ofx.Time, nth int, key, value float64, _ bool) ofx.Status {
	p, st := s.lookup("parametricParamSetNthControlPoint", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	pts := p.curves[curve]
	if nth < 0 || nth >= len(pts) {
		return ofx.StatErrBadIndex
	}
	pts[nth] = ControlPoint{Key: key, Value: value}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Key < pts[j].Key })
	return ofx.StatOK
}

func (s *parametricSuite) ParametricParamAddControlPoint(param ofx.ParamHandle, curve int, _ ofx.Time, key, value float64, _ bool) ofx.Status {
	p, st := s.lookup("parametricParamAddControlPoint", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	pts := append(p.curves[curve], ControlPoint{Key: key, Value: value})
	sort.Slice(pts, func(i, j int) bool { return pts[i].Key < pts[j].Key })
	p.curves[curve] = pts
	return ofx.StatOK
}

func (s *parametricSuite) ParametricParamDeleteControlPoint(param ofx.ParamHandle, curve int, nth int) ofx.Status {
	p, st := s.lookup("parametricParamDeleteControlPoint", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	pts := p.curves[curve]
	if nth < 0 || nth >= len(pts) {
		return ofx.StatErrBadIndex
	}
	p.curves[curve] = append(pts[:nth], pts[nth+1:]...)
	return ofx.StatOK
}

func (s *parametricSuite) ParametricParamDeleteAllControlPoints(param ofx.ParamHandle, curve int) ofx.Status {
	p, st := s.lookup("parametricParamDeleteAllControlPoints", param)
	if st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	delete(p.curves, curve)
	return ofx.StatOK
}
