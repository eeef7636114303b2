package pkgerror

import (
	"errors"
	"fmt"

	"github.com/sudoitir/ulid"
)

var (
	// ErrViolation indicates that a generated sequence broke uniqueness or ordering.
	ErrViolation = errors.New("sequence violation")
)

// Process exit codes returned by ulidgen.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitConflict = 3
)

// Type classifies errors into high-level buckets used by the tool.
type Type int

const (
	TypeServer     Type = iota // Environment errors (e.g., entropy or I/O failures).
	TypeBusiness               // Domain rule violations (e.g., duplicate identifiers).
	TypeValidation             // Input validation failures.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to exit codes.
type Code int

const (
	CodeInternal      Code = iota // Internal or unspecified error.
	CodeInvalidFormat             // Input is not a well-formed identifier.
	CodeInvalidInput              // Input is well-formed but out of range or unsupported.
	CodeConflict                  // Duplicate or out-of-order identifiers.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeConflict:
		return "ERROR_CODE_CONFLICT"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the tool.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error code to a process exit code.
func (e *Error) ExitCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeInvalidInput:
		return ExitUsage
	case CodeConflict:
		return ExitConflict
	default:
		return ExitFailure
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "", TypeServer, CodeInternal)
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return new(nil, msg, TypeBusiness, code)
}

// NewConflict creates a business error for duplicate or out-of-order identifiers.
func NewConflict(err error) error {
	return new(err, "", TypeBusiness, CodeConflict)
}

// NewInvalidInput creates a validation error for out-of-range or unsupported input.
func NewInvalidInput(err error) error {
	return new(err, "", TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat creates a validation error for malformed input.
func NewInvalidFormat(msg string, err error) error {
	return new(err, msg, TypeValidation, CodeInvalidFormat)
}

// FromULID classifies an error returned by the ulid packages. Errors that are
// already *Error are returned unchanged; nil stays nil.
func FromULID(err error) error {
	if err == nil {
		return nil
	}

	var perr *Error
	if errors.As(err, &perr) {
		return err
	}

	if errors.Is(err, ErrViolation) {
		return NewConflict(err)
	}

	var uerr *ulid.Error
	if !errors.As(err, &uerr) {
		return NewServer(err)
	}

	switch uerr.Kind() {
	case ulid.KindInvalidLength, ulid.KindInvalidCharacter, ulid.KindInputTooLong, ulid.KindDecode:
		return NewInvalidFormat("", err)
	case ulid.KindTimestampOverflow, ulid.KindUnsupportedTargetType, ulid.KindNullInput:
		return NewInvalidInput(err)
	default:
		return NewServer(err)
	}
}

// ExitCode returns the exit code for any error: ExitOK for nil, the mapped
// code for *Error and ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr.ExitCode()
	}
	if errors.Is(err, ErrViolation) {
		return ExitConflict
	}
	return ExitFailure
}
