// Package property gives typed, capability-checked access to host property
// sets.
//
// A property is declared once as a Property[K, V]: its name, the Go value
// type V, and a capability interface K. Views such as EffectInstance or
// RenderIn implement the capability markers for exactly the properties the
// protocol allows on them, so reading RowBytes from a RenderIn view does not
// compile.
package property

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// View is implemented by every typed view; it exposes the underlying set.
type View interface {
	PropertySet() Set
}

// Set is a host property set paired with the suite that reads it.
type Set struct {
	handle ofx.PropertySetHandle
	suite  ofx.PropertySuiteV1
}

// NewSet pairs handle with suite. A nil suite is allowed; every access then
// fails with SuiteNotInitialized.
func NewSet(handle ofx.PropertySetHandle, suite ofx.PropertySuiteV1) Set {
	return Set{handle: handle, suite: suite}
}

// PropertySet implements View.
func (s Set) PropertySet() Set { return s }

// Handle returns the raw host handle.
func (s Set) Handle() ofx.PropertySetHandle { return s.handle }

// IsNil reports whether the set has no host handle.
func (s Set) IsNil() bool { return s.handle == nil }

func (s Set) check(name string) (ofx.PropertySuiteV1, error) {
	if s.suite == nil {
		return nil, ofx.NewError(ofx.KindSuiteNotInitialized, "property %s: no property suite", name)
	}
	if s.handle == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "property %s: nil property set", name)
	}
	return s.suite, nil
}

func statusErr(st ofx.Status, op, name string, index int) error {
	return ofx.FromStatus(st, fmt.Sprintf("%s %s[%d]", op, name, index))
}

func (s Set) getInt(name string, index int) (int, error) {
	suite, err := s.check(name)
	if err != nil {
		return 0, err
	}
	v, st := suite.PropGetInt(s.handle, name, index)
	return v, statusErr(st, "propGetInt", name, index)
}

func (s Set) setInt(name string, index int, v int) error {
	suite, err := s.check(name)
	if err != nil {
		return err
	}
	return statusErr(suite.PropSetInt(s.handle, name, index, v), "propSetInt", name, index)
}

func (s Set) getDouble(name string, index int) (float64, error) {
	suite, err := s.check(name)
	if err != nil {
		return 0, err
	}
	v, st := suite.PropGetDouble(s.handle, name, index)
	return v, statusErr(st, "propGetDouble", name, index)
}

func (s Set) setDouble(name string, index int, v float64) error {
	suite, err := s.check(name)
	if err != nil {
		return err
	}
	return statusErr(suite.PropSetDouble(s.handle, name, index, v), "propSetDouble", name, index)
}

func (s Set) getPointer(name string, index int) (uintptr, error) {
	suite, err := s.check(name)
	if err != nil {
		return 0, err
	}
	v, st := suite.PropGetPointer(s.handle, name, index)
	return v, statusErr(st, "propGetPointer", name, index)
}

func (s Set) setPointer(name string, index int, v uintptr) error {
	suite, err := s.check(name)
	if err != nil {
		return err
	}
	return statusErr(suite.PropSetPointer(s.handle, name, index, v), "propSetPointer", name, index)
}

func (s Set) getString(name string, index int) (string, error) {
	suite, err := s.check(name)
	if err != nil {
		return "", err
	}
	v, st := suite.PropGetString(s.handle, name, index)
	if err := statusErr(st, "propGetString", name, index); err != nil {
		return "", err
	}
	if !utf8.ValidString(v) {
		return "", ofx.NewError(ofx.KindStringConversion, "property %s[%d]: host string is not valid UTF-8", name, index)
	}
	return v, nil
}

func (s Set) setString(name string, index int, v string) error {
	if err := CheckString(v); err != nil {
		return ofx.WrapError(ofx.KindStringConversion, err, "property %s[%d]", name, index)
	}
	suite, err := s.check(name)
	if err != nil {
		return err
	}
	return statusErr(suite.PropSetString(s.handle, name, index, v), "propSetString", name, index)
}

func (s Set) dimension(name string) (int, error) {
	suite, err := s.check(name)
	if err != nil {
		return 0, err
	}
	n, st := suite.PropGetDimension(s.handle, name)
	if st != ofx.StatOK {
		return 0, ofx.FromStatus(st, "propGetDimension "+name)
	}
	return n, nil
}

func (s Set) reset(name string) error {
	suite, err := s.check(name)
	if err != nil {
		return err
	}
	if st := suite.PropReset(s.handle, name); st != ofx.StatOK {
		return ofx.FromStatus(st, "propReset "+name)
	}
	return nil
}

// CheckString reports whether v can cross the boundary as a NUL-terminated
// UTF-8 string.
func CheckString(v string) error {
	if strings.IndexByte(v, 0) >= 0 {
		return ofx.NewError(ofx.KindStringConversion, "string %q contains a NUL byte", v)
	}
	if !utf8.ValidString(v) {
		return ofx.NewError(ofx.KindStringConversion, "string %q is not valid UTF-8", v)
	}
	return nil
}
