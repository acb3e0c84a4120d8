// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import (
	"errors"
	"fmt"
)

// Result is a runtime result code. Negative values are failures,
// zero is success and positive values are qualified successes.
type Result int32

// Result codes reported by runtimes.
const (
	Success                    Result = 0
	TimeoutExpired             Result = 1
	SessionLossPending         Result = 3
	EventUnavailable           Result = 4
	SessionNotFocused          Result = 8
	FrameDiscarded             Result = 9
	ErrorValidationFailure     Result = -1
	ErrorRuntimeFailure        Result = -2
	ErrorOutOfMemory           Result = -3
	ErrorAPIVersionUnsupported Result = -4
	ErrorInitializationFailed  Result = -6
	ErrorFunctionUnsupported   Result = -7
	ErrorExtensionNotPresent   Result = -9
	ErrorInstanceLost          Result = -13
	ErrorSessionRunning        Result = -14
	ErrorSessionNotRunning     Result = -16
	ErrorSessionLost           Result = -17
	ErrorSystemInvalid         Result = -18
	ErrorHandleInvalid         Result = -12
	ErrorCallOrderInvalid      Result = -37
	ErrorGraphicsDeviceInvalid Result = -38
	ErrorFormFactorUnavailable Result = -34
	ErrorSessionNotReady       Result = -28
	ErrorSessionNotStopping    Result = -29
	ErrorGraphicsRequirements  Result = -50
)

var resultNames = map[Result]string{
	Success:                    "XR_SUCCESS",
	TimeoutExpired:             "XR_TIMEOUT_EXPIRED",
	SessionLossPending:         "XR_SESSION_LOSS_PENDING",
	EventUnavailable:           "XR_EVENT_UNAVAILABLE",
	SessionNotFocused:          "XR_SESSION_NOT_FOCUSED",
	FrameDiscarded:             "XR_FRAME_DISCARDED",
	ErrorValidationFailure:     "XR_ERROR_VALIDATION_FAILURE",
	ErrorRuntimeFailure:        "XR_ERROR_RUNTIME_FAILURE",
	ErrorOutOfMemory:           "XR_ERROR_OUT_OF_MEMORY",
	ErrorAPIVersionUnsupported: "XR_ERROR_API_VERSION_UNSUPPORTED",
	ErrorInitializationFailed:  "XR_ERROR_INITIALIZATION_FAILED",
	ErrorFunctionUnsupported:   "XR_ERROR_FUNCTION_UNSUPPORTED",
	ErrorExtensionNotPresent:   "XR_ERROR_EXTENSION_NOT_PRESENT",
	ErrorInstanceLost:          "XR_ERROR_INSTANCE_LOST",
	ErrorSessionRunning:        "XR_ERROR_SESSION_RUNNING",
	ErrorSessionNotRunning:     "XR_ERROR_SESSION_NOT_RUNNING",
	ErrorSessionLost:           "XR_ERROR_SESSION_LOST",
	ErrorSystemInvalid:         "XR_ERROR_SYSTEM_INVALID",
	ErrorHandleInvalid:         "XR_ERROR_HANDLE_INVALID",
	ErrorCallOrderInvalid:      "XR_ERROR_CALL_ORDER_INVALID",
	ErrorGraphicsDeviceInvalid: "XR_ERROR_GRAPHICS_DEVICE_INVALID",
	ErrorFormFactorUnavailable: "XR_ERROR_FORM_FACTOR_UNAVAILABLE",
	ErrorSessionNotReady:       "XR_ERROR_SESSION_NOT_READY",
	ErrorSessionNotStopping:    "XR_ERROR_SESSION_NOT_STOPPING",
	ErrorGraphicsRequirements:  "XR_ERROR_GRAPHICS_REQUIREMENTS_CALL_MISSING",
}

// String returns the symbolic name of the result code.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	if r < 0 {
		return fmt.Sprintf("XR_UNKNOWN_FAILURE_%d", int32(r))
	}
	return fmt.Sprintf("XR_UNKNOWN_SUCCESS_%d", int32(r))
}

// Failed reports whether r is a failure code.
func (r Result) Failed() bool { return r < 0 }

// Error is a failure reported by a runtime entry point.
type Error struct {
	// Op is the runtime entry point, for example "xrCreateSession".
	Op string

	// Result is the failure code.
	Result Result
}

func (e *Error) Error() string {
	return "xr: " + e.Op + ": " + e.Result.String()
}

// NewError returns an *Error for op and result.
func NewError(op string, result Result) *Error {
	return &Error{Op: op, Result: result}
}

// ErrEventUnavailable is returned by PollEvent when the queue is empty.
var ErrEventUnavailable = NewError("xrPollEvent", EventUnavailable)

// ResultOf extracts the Result carried by err. It returns Success for a nil
// error and ErrorRuntimeFailure for errors that carry no Result.
func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	var xe *Error
	if errors.As(err, &xe) {
		return xe.Result
	}
	return ErrorRuntimeFailure
}

// IsResult reports whether err carries the given result code.
func IsResult(err error, r Result) bool {
	var xe *Error
	return errors.As(err, &xe) && xe.Result == r
}
