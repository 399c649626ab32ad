package handle

import (
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Parametric is a parametric parameter: a set of curves, each a list of
// (key, value) control points.
type Parametric struct {
	rawParam
}

// ControlPoint is one point of a curve.
type ControlPoint struct {
	Key, Value float64
}

// Parametric looks up the named parametric parameter.
func (s ParamSet) Parametric(name string) (Parametric, error) {
	raw, err := s.lookup(name)
	if err != nil {
		return Parametric{}, err
	}
	p := Parametric{rawParam: raw}
	kind, err := property.ParamKind.Get(p.Properties())
	if err != nil {
		return Parametric{}, err
	}
	if kind != ofx.ParamTypeParametric {
		return Parametric{}, ofx.NewError(ofx.KindInvalidHandle, "parameter %q is %s, not parametric", name, kind)
	}
	return p, nil
}

// Name returns the parameter name.
func (p Parametric) Name() string { return p.name }

// Properties returns the parameter's property view.
func (p Parametric) Properties() property.ParamInstance {
	return property.ParamInstance{Set: newSet(p.suites, p.props)}
}

func (p Parametric) suite() (ofx.ParametricParameterSuiteV1, error) {
	if p.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "nil parameter handle")
	}
	return p.suites.Parametric()
}

// Value evaluates curve at x for time t.
func (p Parametric) Value(curve int, t ofx.Time, x float64) (float64, error) {
	s, err := p.suite()
	if err != nil {
		return 0, err
	}
	v, st := s.ParametricParamGetValue(p.handle, curve, t, x)
	return v, ofx.FromStatus(st, "parametricParamGetValue "+p.name)
}

// ControlPoints returns every control point of curve at t.
func (p Parametric) ControlPoints(curve int, t ofx.Time) ([]ControlPoint, error) {
	s, err := p.suite()
	if err != nil {
		return nil, err
	}
	n, st := s.ParametricParamGetNControlPoints(p.handle, curve, t)
	if err := ofx.FromStatus(st, "parametricParamGetNControlPoints "+p.name); err != nil {
		return nil, err
	}
	points := make([]ControlPoint, 0, n)
	for i := 0; i < n; i++ {
		pt, err := p.ControlPoint(curve, t, i)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

// ControlPoint returns the nth control point of curve at t.
func (p Parametric) ControlPoint(curve int, t ofx.Time, nth int) (ControlPoint, error) {
	s, err := p.suite()
	if err != nil {
		return ControlPoint{}, err
	}
	key, value, st := s.ParametricParamGetNthControlPoint(p.handle, curve, t, nth)
	if err := ofx.FromStatus(st, "parametricParamGetNthControlPoint "+p.name); err != nil {
		return ControlPoint{}, err
	}
	return ControlPoint{Key: key, Value: value}, nil
}

// SetControlPoint replaces the nth control point of curve.
func (p Parametric) SetControlPoint(curve int, t ofx.Time, nth int, pt ControlPoint, addKey bool) error {
	s, err := p.suite()
	if err != nil {
		return err
	}
	st := s.ParametricParamSetNthControlPoint(p.handle, curve, t, nth, pt.Key, pt.Value, addKey)
	return ofx.FromStatus(st, "parametricParamSetNthControlPoint "+p.name)
}

// AddControlPoint adds a control point to curve.
func (p Parametric) AddControlPoint(curve int, t ofx.Time, pt ControlPoint, addKey bool) error {
	s, err := p.suite()
	if err != nil {
		return err
	}
	st := s.ParametricParamAddControlPoint(p.handle, curve, t, pt.Key, pt.Value, addKey)
	return ofx.FromStatus(st, "parametricParamAddControlPoint "+p.name)
}

// DeleteControlPoint removes the nth control point of curve.
func (p Parametric) DeleteControlPoint(curve, nth int) error {
	s, err := p.suite()
	if err != nil {
		return err
	}
	return ofx.FromStatus(s.ParametricParamDeleteControlPoint(p.handle, curve, nth), "parametricParamDeleteControlPoint "+p.name)
}

// DeleteAllControlPoints clears curve.
func (p Parametric) DeleteAllControlPoints(curve int) error {
	s, err := p.suite()
	if err != nil {
		return err
	}
	return ofx.FromStatus(s.ParametricParamDeleteAllControlPoints(p.handle, curve), "parametricParamDeleteAllControlPoints "+p.name)
}
