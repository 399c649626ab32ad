// Package ofx models the OpenFX image-effect C ABI in Go: status codes, opaque
// handles, name tokens and the suite function tables a host hands to a plugin.
//
// Nothing in this package calls into C. The cgo side lives in pkg/bridge, which
// implements the suite interfaces declared here over the host's function tables.
package ofx

import "fmt"

// Status is the integer result code every suite call and every mainEntry
// invocation returns.
type Status int32

// Status codes, with the values fixed by the protocol.
const (
	StatOK                    Status = 0
	StatFailed                Status = 1
	StatErrFatal              Status = 2
	StatErrUnknown            Status = 3
	StatErrMissingHostFeature Status = 4
	StatErrUnsupported        Status = 5
	StatErrExists             Status = 6
	StatErrFormat             Status = 7
	StatErrMemory             Status = 8
	StatErrBadHandle          Status = 9
	StatErrBadIndex           Status = 10
	StatErrValue              Status = 11
	StatReplyYes              Status = 12
	StatReplyNo               Status = 13
	StatReplyDefault          Status = 14

	StatErrImageFormat Status = 1000
	StatGLOutOfMemory  Status = 1001
	StatGLRenderFailed Status = 1002
)

var statusNames = map[Status]string{
	StatOK:                    "kOfxStatOK",
	StatFailed:                "kOfxStatFailed",
	StatErrFatal:              "kOfxStatErrFatal",
	StatErrUnknown:            "kOfxStatErrUnknown",
	StatErrMissingHostFeature: "kOfxStatErrMissingHostFeature",
	StatErrUnsupported:        "kOfxStatErrUnsupported",
	StatErrExists:             "kOfxStatErrExists",
	StatErrFormat:             "kOfxStatErrFormat",
	StatErrMemory:             "kOfxStatErrMemory",
	StatErrBadHandle:          "kOfxStatErrBadHandle",
	StatErrBadIndex:           "kOfxStatErrBadIndex",
	StatErrValue:              "kOfxStatErrValue",
	StatReplyYes:              "kOfxStatReplyYes",
	StatReplyNo:               "kOfxStatReplyNo",
	StatReplyDefault:          "kOfxStatReplyDefault",
	StatErrImageFormat:        "kOfxStatErrImageFormat",
	StatGLOutOfMemory:         "kOfxStatGLOutOfMemory",
	StatGLRenderFailed:        "kOfxStatGLRenderFailed",
}

// String returns the protocol name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("OfxStatus(%d)", int32(s))
}

// OK reports whether the status is kOfxStatOK.
func (s Status) OK() bool {
	return s == StatOK
}
