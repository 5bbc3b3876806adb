package sync

import (
	"errors"
	"fmt"
)

// Prefix is the error code prefix of synchronization failures.
const Prefix = "DRV"

// Kind groups error codes by what went wrong.
type Kind string

const (
	KindNotFound       Kind = "NOT_FOUND"
	KindForbidden      Kind = "FORBIDDEN"
	KindCorrupt        Kind = "CORRUPT_VERSION"
	KindUnavailable    Kind = "DATA_UNAVAILABLE"
	KindInvalidInput   Kind = "INVALID_INPUT"
	KindConflict       Kind = "CONFLICT"
	KindContractBreach Kind = "CONTRACT_VIOLATION"
)

// Error is a synchronization-domain failure. Two errors match with errors.Is
// when prefix and code are equal, regardless of message or cause.
type Error struct {
	Err     error
	Prefix  string
	Kind    Kind
	Message string
	Code    int
}

// Common synchronization errors
var (
	ErrNotFound         = &Error{Prefix: Prefix, Code: 404, Kind: KindNotFound, Message: "not found"}
	ErrPermissionDenied = &Error{Prefix: Prefix, Code: 403, Kind: KindForbidden, Message: "permission denied"}
	ErrCorruptVersion   = &Error{Prefix: Prefix, Code: 422, Kind: KindCorrupt, Message: "corrupt version"}
	ErrDataUnavailable  = &Error{Prefix: Prefix, Code: 503, Kind: KindUnavailable, Message: "data unavailable"}
	ErrInvalidName      = &Error{Prefix: Prefix, Code: 400, Kind: KindInvalidInput, Message: "invalid name"}
	ErrConflict         = &Error{Prefix: Prefix, Code: 409, Kind: KindConflict, Message: "conflicting versions"}

	// ErrDuplicatePath indicates that one side reported the same path twice
	ErrDuplicatePath = &Error{Prefix: Prefix, Code: 1001, Kind: KindContractBreach, Message: "duplicate path"}

	// ErrInvalidMaxActions indicates a negative action budget
	ErrInvalidMaxActions = &Error{Prefix: Prefix, Code: 1002, Kind: KindContractBreach, Message: "max actions must not be negative"}
)

// Error formats the error as "DRV-0404 not found: detail: cause".
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s", e.CodeString(), e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// CodeString returns prefix and code, e.g. "DRV-0404".
func (e *Error) CodeString() string {
	return fmt.Sprintf("%s-%04d", e.Prefix, e.Code)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors with the same prefix and code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Prefix == t.Prefix && e.Code == t.Code
}

// Wrap returns a copy of e with cause err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.Err = err
	return &c
}

// Withf returns a copy of e with detail appended to the message.
func (e *Error) Withf(format string, args ...any) *Error {
	c := *e
	c.Message = e.Message + ": " + fmt.Sprintf(format, args...)
	return &c
}

// AsError extracts the synchronization error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
