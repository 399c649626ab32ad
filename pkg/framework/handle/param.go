package handle

import (
	"unicode/utf8"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// ParamValue is a value type a parameter can be read as. Booleans travel as
// host integers and strings as NUL-terminated byte strings.
type ParamValue interface {
	int | float64 | bool | string
}

// ParamSet is an effect's parameter set.
type ParamSet struct {
	handle ofx.ParamSetHandle
	suites *suite.Table
}

// Handle returns the raw parameter set handle.
func (s ParamSet) Handle() ofx.ParamSetHandle { return s.handle }

func (s ParamSet) parameter() (ofx.ParameterSuiteV1, error) {
	if s.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil parameter set handle")
	}
	return s.suites.Parameter()
}

// Properties returns the parameter set's own property view.
func (s ParamSet) Properties() (property.ParamSet, error) {
	ps, err := s.parameter()
	if err != nil {
		return property.ParamSet{}, err
	}
	h, st := ps.ParamSetGetPropertySet(s.handle)
	if err := ofx.FromStatus(st, "paramSetGetPropertySet"); err != nil {
		return property.ParamSet{}, err
	}
	return property.ParamSet{Set: newSet(s.suites, h)}, nil
}

func (s ParamSet) define(paramType ofx.ParamType, name string) (property.Set, error) {
	if err := property.CheckString(name); err != nil {
		return property.Set{}, err
	}
	ps, err := s.parameter()
	if err != nil {
		return property.Set{}, err
	}
	h, st := ps.ParamDefine(s.handle, paramType, name)
	if err := ofx.FromStatus(st, "paramDefine "+name); err != nil {
		return property.Set{}, err
	}
	return newSet(s.suites, h), nil
}

// DefineDouble defines a double parameter.
func (s ParamSet) DefineDouble(name string) (property.DoubleParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeDouble, name)
	return property.DoubleParamDescriptor{Set: set}, err
}

// DefineInt defines an integer parameter.
func (s ParamSet) DefineInt(name string) (property.IntParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeInteger, name)
	return property.IntParamDescriptor{Set: set}, err
}

// DefineBool defines a boolean parameter.
func (s ParamSet) DefineBool(name string) (property.BoolParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeBoolean, name)
	return property.BoolParamDescriptor{Set: set}, err
}

// DefineString defines a string parameter.
func (s ParamSet) DefineString(name string) (property.StringParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeString, name)
	return property.StringParamDescriptor{Set: set}, err
}

// DefineChoice defines a choice parameter.
func (s ParamSet) DefineChoice(name string) (property.ChoiceParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeChoice, name)
	return property.ChoiceParamDescriptor{Set: set}, err
}

// DefineGroup defines a group parameter.
func (s ParamSet) DefineGroup(name string) (property.GroupParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeGroup, name)
	return property.GroupParamDescriptor{Set: set}, err
}

// DefinePage defines a page parameter.
func (s ParamSet) DefinePage(name string) (property.PageParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypePage, name)
	return property.PageParamDescriptor{Set: set}, err
}

// DefineButton defines a push button parameter.
func (s ParamSet) DefineButton(name string) (property.ParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypePushButton, name)
	return property.ParamDescriptor{Set: set}, err
}

// DefineParametric defines a parametric curve parameter.
func (s ParamSet) DefineParametric(name string) (property.ParametricParamDescriptor, error) {
	set, err := s.define(ofx.ParamTypeParametric, name)
	return property.ParametricParamDescriptor{Set: set}, err
}

// EditBegin opens an undo block named name around several value changes.
func (s ParamSet) EditBegin(name string) error {
	if err := property.CheckString(name); err != nil {
		return err
	}
	ps, err := s.parameter()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ps.ParamEditBegin(s.handle, name), "paramEditBegin")
}

// EditEnd closes the undo block.
func (s ParamSet) EditEnd() error {
	ps, err := s.parameter()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ps.ParamEditEnd(s.handle), "paramEditEnd")
}

type rawParam struct {
	handle ofx.ParamHandle
	props  ofx.PropertySetHandle
	name   string
	suites *suite.Table
}

func (s ParamSet) lookup(name string) (rawParam, error) {
	if err := property.CheckString(name); err != nil {
		return rawParam{}, err
	}
	ps, err := s.parameter()
	if err != nil {
		return rawParam{}, err
	}
	h, props, st := ps.ParamGetHandle(s.handle, name)
	if st != ofx.StatOK {
		return rawParam{}, ofx.NewError(ofx.KindInvalidHandle, "unknown parameter %q (paramGetHandle: %s)", name, st)
	}
	return rawParam{handle: h, props: props, name: name, suites: s.suites}, nil
}

func acceptsType[T ParamValue](paramType ofx.ParamType) bool {
	var zero T
	switch any(zero).(type) {
	case int:
		return paramType == ofx.ParamTypeInteger || paramType == ofx.ParamTypeChoice
	case float64:
		return paramType == ofx.ParamTypeDouble
	case bool:
		return paramType == ofx.ParamTypeBoolean
	case string:
		return paramType == ofx.ParamTypeString
	}
	return false
}

// Parameter looks up the named parameter as a T. An unknown name, or a
// parameter whose kind does not hold T values, fails with InvalidHandle.
func Parameter[T ParamValue](s ParamSet, name string) (ParamHandle[T], error) {
	raw, err := s.lookup(name)
	if err != nil {
		return ParamHandle[T]{}, err
	}
	p := ParamHandle[T]{rawParam: raw}
	kind, err := property.ParamKind.Get(p.Properties())
	if err != nil {
		return ParamHandle[T]{}, err
	}
	if !acceptsType[T](kind) {
		var zero T
		return ParamHandle[T]{}, ofx.NewError(ofx.KindInvalidHandle, "parameter %q is %s, not %T", name, kind, zero)
	}
	return p, nil
}

// ParamHandle is a parameter of an instance read and written as T.
type ParamHandle[T ParamValue] struct {
	rawParam
}

// Name returns the parameter name.
func (p ParamHandle[T]) Name() string { return p.name }

// Handle returns the raw parameter handle.
func (p ParamHandle[T]) Handle() ofx.ParamHandle { return p.handle }

// Properties returns the parameter's property view.
func (p ParamHandle[T]) Properties() property.ParamInstance {
	return property.ParamInstance{Set: newSet(p.suites, p.props)}
}

func (p ParamHandle[T]) parameter() (ofx.ParameterSuiteV1, error) {
	if p.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil parameter handle")
	}
	return p.suites.Parameter()
}

// Value returns the current value.
func (p ParamHandle[T]) Value() (T, error) {
	return p.get(nil)
}

// ValueAtTime returns the value at t.
func (p ParamHandle[T]) ValueAtTime(t ofx.Time) (T, error) {
	return p.get(&t)
}

func (p ParamHandle[T]) get(at *ofx.Time) (T, error) {
	var out T
	ps, err := p.parameter()
	if err != nil {
		return out, err
	}
	op := "paramGetValue"
	if at != nil {
		op = "paramGetValueAtTime"
	}

	var st ofx.Status
	switch dst := any(&out).(type) {
	case *int:
		*dst, st = getInt(ps, p.handle, at)
	case *float64:
		if at != nil {
			*dst, st = ps.ParamGetValueAtTimeDouble(p.handle, *at)
		} else {
			*dst, st = ps.ParamGetValueDouble(p.handle)
		}
	case *bool:
		var v int
		v, st = getInt(ps, p.handle, at)
		*dst = v != 0
	case *string:
		var v *string
		if at != nil {
			v, st = ps.ParamGetValueAtTimeString(p.handle, *at)
		} else {
			v, st = ps.ParamGetValueString(p.handle)
		}
		if st == ofx.StatOK && v != nil {
			if !utf8.ValidString(*v) {
				return out, ofx.NewError(ofx.KindStringConversion, "parameter %q: host string is not valid UTF-8", p.name)
			}
			*dst = *v
		}
	}
	if err := ofx.FromStatus(st, op+" "+p.name); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func getInt(ps ofx.ParameterSuiteV1, h ofx.ParamHandle, at *ofx.Time) (int, ofx.Status) {
	if at != nil {
		return ps.ParamGetValueAtTimeInt(h, *at)
	}
	return ps.ParamGetValueInt(h)
}

func setInt(ps ofx.ParameterSuiteV1, h ofx.ParamHandle, at *ofx.Time, v int) ofx.Status {
	if at != nil {
		return ps.ParamSetValueAtTimeInt(h, *at, v)
	}
	return ps.ParamSetValueInt(h, v)
}

// SetValue sets the value, or the value at the current time for animated
// parameters.
func (p ParamHandle[T]) SetValue(v T) error {
	return p.set(nil, v)
}

// SetValueAtTime sets a keyframe at t.
func (p ParamHandle[T]) SetValueAtTime(t ofx.Time, v T) error {
	return p.set(&t, v)
}

func (p ParamHandle[T]) set(at *ofx.Time, v T) error {
	if s, ok := any(v).(string); ok {
		if err := property.CheckString(s); err != nil {
			return err
		}
	}
	ps, err := p.parameter()
	if err != nil {
		return err
	}
	op := "paramSetValue"
	if at != nil {
		op = "paramSetValueAtTime"
	}

	var st ofx.Status
	switch val := any(v).(type) {
	case int:
		st = setInt(ps, p.handle, at, val)
	case float64:
		if at != nil {
			st = ps.ParamSetValueAtTimeDouble(p.handle, *at, val)
		} else {
			st = ps.ParamSetValueDouble(p.handle, val)
		}
	case bool:
		i := 0
		if val {
			i = 1
		}
		st = setInt(ps, p.handle, at, i)
	case string:
		if at != nil {
			st = ps.ParamSetValueAtTimeString(p.handle, *at, val)
		} else {
			st = ps.ParamSetValueString(p.handle, val)
		}
	}
	return ofx.FromStatus(st, op+" "+p.name)
}

// NumKeys returns the number of keyframes.
func (p ParamHandle[T]) NumKeys() (int, error) {
	ps, err := p.parameter()
	if err != nil {
		return 0, err
	}
	n, st := ps.ParamGetNumKeys(p.handle)
	return n, ofx.FromStatus(st, "paramGetNumKeys "+p.name)
}

// KeyTime returns the time of the nth keyframe.
func (p ParamHandle[T]) KeyTime(nth int) (ofx.Time, error) {
	ps, err := p.parameter()
	if err != nil {
		return 0, err
	}
	t, st := ps.ParamGetKeyTime(p.handle, nth)
	return t, ofx.FromStatus(st, "paramGetKeyTime "+p.name)
}

// KeyIndex finds the keyframe at, before or after t depending on direction.
// It fails with a StatFailed host status when there is no such keyframe.
func (p ParamHandle[T]) KeyIndex(t ofx.Time, direction ofx.KeySearch) (int, error) {
	ps, err := p.parameter()
	if err != nil {
		return -1, err
	}
	i, st := ps.ParamGetKeyIndex(p.handle, t, direction)
	if err := ofx.FromStatus(st, "paramGetKeyIndex "+p.name); err != nil {
		return -1, err
	}
	return i, nil
}

// DeleteKey deletes the keyframe at t.
func (p ParamHandle[T]) DeleteKey(t ofx.Time) error {
	ps, err := p.parameter()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ps.ParamDeleteKey(p.handle, t), "paramDeleteKey "+p.name)
}

// DeleteAllKeys deletes every keyframe.
func (p ParamHandle[T]) DeleteAllKeys() error {
	ps, err := p.parameter()
	if err != nil {
		return err
	}
	return ofx.FromStatus(ps.ParamDeleteAllKeys(p.handle), "paramDeleteAllKeys "+p.name)
}
