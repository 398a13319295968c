package base58

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	// ErrBadFormat covers malformed Base58 input and checksum mismatches.
	ErrBadFormat ErrorCode = "BADFORMAT"
	// ErrUnexpectedSize is returned when a checksum-verified payload has the
	// wrong length for a fixed-size destination.
	ErrUnexpectedSize ErrorCode = "UNEXPECTED_SIZE"
	// ErrEmpty is returned when a decoded buffer is too short to carry a checksum.
	ErrEmpty ErrorCode = "EMPTY"
)

// CodedError is a stable decode error with a machine-readable code and a
// human message.
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// IsCode reports whether err is (or wraps) a CodedError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ce *CodedError
	return errors.As(err, &ce) && ce.Code == code
}
