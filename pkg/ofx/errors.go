package ofx

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Kind classifies every error the framework produces. It is carried as the
// oops error code so it survives wrapping.
type Kind string

const (
	// KindInvalidSuite means a required or requested suite is missing.
	KindInvalidSuite Kind = "InvalidSuite"
	// KindInvalidHandle means an opaque handle was not recognized or is of the wrong kind.
	KindInvalidHandle Kind = "InvalidHandle"
	// KindInvalidAction means the action name is not one this plugin supports.
	KindInvalidAction Kind = "InvalidAction"
	// KindHostNotReady means setHost has not delivered a usable host yet.
	KindHostNotReady Kind = "HostNotReady"
	// KindSuiteNotInitialized means a suite call was attempted before Load.
	KindSuiteNotInitialized Kind = "SuiteNotInitialized"
	// KindStringConversion means a name or value failed UTF-8 or NUL validation.
	KindStringConversion Kind = "StringConversion"
	// KindUnimplemented marks a deliberately unsupported optional capability.
	KindUnimplemented Kind = "Unimplemented"
	// KindHostStatus means a suite call returned a non-OK status.
	KindHostStatus Kind = "HostStatus"
	// KindAlreadyExists means instance data is already attached to the effect.
	KindAlreadyExists Kind = "AlreadyExists"
	// KindBusy means an image is already borrowed in a conflicting way.
	KindBusy Kind = "Busy"
	// KindInvalidValue means an argument was rejected before reaching the host.
	KindInvalidValue Kind = "InvalidValue"
)

const (
	errorDomain   = "ofx"
	statusContext = "status"
)

// ReplyDefault is returned by effect implementations for actions they do not
// trap, so the host applies its default behaviour.
var ReplyDefault = errors.New("ofx: reply default")

// NewError builds an error of the given kind.
func NewError(kind Kind, format string, args ...any) error {
	return oops.In(errorDomain).Code(string(kind)).Errorf(format, args...)
}

// WrapError attaches a kind to an existing error. A nil err yields nil. If err
// already carries a kind, that innermost kind is the one reported.
func WrapError(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return oops.In(errorDomain).Code(string(kind)).Wrapf(err, format, args...)
}

// FromStatus converts a suite status into an error. StatOK yields nil.
func FromStatus(status Status, op string) error {
	if status == StatOK {
		return nil
	}
	return oops.In(errorDomain).
		Code(string(KindHostStatus)).
		With(statusContext, status).
		With("op", op).
		Errorf("%s: %s", op, status)
}

// KindOf extracts the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code := fmt.Sprint(oopsErr.Code())
	if code == "<nil>" {
		return ""
	}
	return Kind(code)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusOf maps err onto the protocol status the host should see.
func StatusOf(err error) Status {
	if err == nil {
		return StatOK
	}
	if errors.Is(err, ReplyDefault) {
		return StatReplyDefault
	}
	switch KindOf(err) {
	case KindInvalidSuite:
		return StatErrMissingHostFeature
	case KindInvalidHandle:
		return StatErrBadHandle
	case KindInvalidAction:
		return StatReplyDefault
	case KindHostNotReady, KindSuiteNotInitialized, KindBusy:
		return StatFailed
	case KindStringConversion, KindInvalidValue:
		return StatErrValue
	case KindUnimplemented:
		return StatErrUnsupported
	case KindAlreadyExists:
		return StatErrExists
	case KindHostStatus:
		if oopsErr, ok := oops.AsOops(err); ok {
			if status, ok := oopsErr.Context()[statusContext].(Status); ok {
				return status
			}
		}
		return StatFailed
	default:
		return StatErrUnknown
	}
}
