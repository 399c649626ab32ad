package property

import "github.com/justyntemme/ofxgo/pkg/ofx"

// codec marshals a Go value to and from one or more property slots starting
// at index.
type codec[V any] interface {
	get(s Set, name string, index int) (V, error)
	set(s Set, name string, index int, v V) error
}

type intCodec struct{}

func (intCodec) get(s Set, name string, index int) (int, error) { return s.getInt(name, index) }
func (intCodec) set(s Set, name string, index int, v int) error { return s.setInt(name, index, v) }

type doubleCodec struct{}

func (doubleCodec) get(s Set, name string, index int) (float64, error) {
	return s.getDouble(name, index)
}

func (doubleCodec) set(s Set, name string, index int, v float64) error {
	return s.setDouble(name, index, v)
}

type stringCodec struct{}

func (stringCodec) get(s Set, name string, index int) (string, error) {
	return s.getString(name, index)
}

func (stringCodec) set(s Set, name string, index int, v string) error {
	return s.setString(name, index, v)
}

type pointerCodec struct{}

func (pointerCodec) get(s Set, name string, index int) (uintptr, error) {
	return s.getPointer(name, index)
}

func (pointerCodec) set(s Set, name string, index int, v uintptr) error {
	return s.setPointer(name, index, v)
}

// boolCodec stores booleans as the protocol's 0/1 integers; any nonzero value
// reads as true.
type boolCodec struct{}

func (boolCodec) get(s Set, name string, index int) (bool, error) {
	v, err := s.getInt(name, index)
	return v != 0, err
}

func (boolCodec) set(s Set, name string, index int, v bool) error {
	n := 0
	if v {
		n = 1
	}
	return s.setInt(name, index, n)
}

type timeCodec struct{}

func (timeCodec) get(s Set, name string, index int) (ofx.Time, error) {
	v, err := s.getDouble(name, index)
	return ofx.Time(v), err
}

func (timeCodec) set(s Set, name string, index int, v ofx.Time) error {
	return s.setDouble(name, index, float64(v))
}

// tokenCodec reads string-valued enumerations.
type tokenCodec[T ~string] struct{}

func (tokenCodec[T]) get(s Set, name string, index int) (T, error) {
	v, err := s.getString(name, index)
	return T(v), err
}

func (tokenCodec[T]) set(s Set, name string, index int, v T) error {
	return s.setString(name, index, string(v))
}

// ints reads n consecutive integer slots.
func getInts(s Set, name string, index, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := s.getInt(name, index+i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func setInts(s Set, name string, index int, vs ...int) error {
	for i, v := range vs {
		if err := s.setInt(name, index+i, v); err != nil {
			return err
		}
	}
	return nil
}

func getDoubles(s Set, name string, index, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := s.getDouble(name, index+i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func setDoubles(s Set, name string, index int, vs ...float64) error {
	for i, v := range vs {
		if err := s.setDouble(name, index+i, v); err != nil {
			return err
		}
	}
	return nil
}

type rectICodec struct{}

func (rectICodec) get(s Set, name string, index int) (ofx.RectI, error) {
	v, err := getInts(s, name, index, 4)
	if err != nil {
		return ofx.RectI{}, err
	}
	return ofx.RectI{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func (rectICodec) set(s Set, name string, index int, r ofx.RectI) error {
	return setInts(s, name, index, r.X1, r.Y1, r.X2, r.Y2)
}

type rectDCodec struct{}

func (rectDCodec) get(s Set, name string, index int) (ofx.RectD, error) {
	v, err := getDoubles(s, name, index, 4)
	if err != nil {
		return ofx.RectD{}, err
	}
	return ofx.RectD{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func (rectDCodec) set(s Set, name string, index int, r ofx.RectD) error {
	return setDoubles(s, name, index, r.X1, r.Y1, r.X2, r.Y2)
}

type pointDCodec struct{}

func (pointDCodec) get(s Set, name string, index int) (ofx.PointD, error) {
	v, err := getDoubles(s, name, index, 2)
	if err != nil {
		return ofx.PointD{}, err
	}
	return ofx.PointD{X: v[0], Y: v[1]}, nil
}

func (pointDCodec) set(s Set, name string, index int, p ofx.PointD) error {
	return setDoubles(s, name, index, p.X, p.Y)
}

type rangeDCodec struct{}

func (rangeDCodec) get(s Set, name string, index int) (ofx.RangeD, error) {
	v, err := getDoubles(s, name, index, 2)
	if err != nil {
		return ofx.RangeD{}, err
	}
	return ofx.RangeD{Min: v[0], Max: v[1]}, nil
}

func (rangeDCodec) set(s Set, name string, index int, r ofx.RangeD) error {
	return setDoubles(s, name, index, r.Min, r.Max)
}

// intsCodec reads every slot of a variable-length integer property.
type intsCodec struct{}

func (intsCodec) get(s Set, name string, _ int) ([]int, error) {
	n, err := s.dimension(name)
	if err != nil {
		return nil, err
	}
	return getInts(s, name, 0, n)
}

func (intsCodec) set(s Set, name string, _ int, vs []int) error {
	return setInts(s, name, 0, vs...)
}

// tokensCodec reads every slot of a variable-length string property.
type tokensCodec[T ~string] struct{}

func (tokensCodec[T]) get(s Set, name string, _ int) ([]T, error) {
	n, err := s.dimension(name)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		v, err := s.getString(name, i)
		if err != nil {
			return nil, err
		}
		out[i] = T(v)
	}
	return out, nil
}

func (tokensCodec[T]) set(s Set, name string, _ int, vs []T) error {
	for i, v := range vs {
		if err := s.setString(name, i, string(v)); err != nil {
			return err
		}
	}
	return nil
}

// rangesCodec reads a flat list of min/max pairs.
type rangesCodec struct{}

func (rangesCodec) get(s Set, name string, _ int) ([]ofx.RangeD, error) {
	n, err := s.dimension(name)
	if err != nil {
		return nil, err
	}
	flat, err := getDoubles(s, name, 0, n-n%2)
	if err != nil {
		return nil, err
	}
	out := make([]ofx.RangeD, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, ofx.RangeD{Min: flat[i], Max: flat[i+1]})
	}
	return out, nil
}

func (rangesCodec) set(s Set, name string, _ int, vs []ofx.RangeD) error {
	for i, r := range vs {
		if err := setDoubles(s, name, 2*i, r.Min, r.Max); err != nil {
			return err
		}
	}
	return nil
}
