package ulid

import "fmt"

// Kind classifies the failures reported by this package.
type Kind int

const (
	KindUnknown               Kind = iota // Unclassified error.
	KindInvalidLength                     // Wrong byte-buffer or string length.
	KindInvalidCharacter                  // Symbol outside the decode alphabet.
	KindTimestampOverflow                 // Timestamp does not fit in 48 bits.
	KindInputTooLong                      // Internal group parser width exceeded.
	KindNullInput                         // Required input was nil.
	KindUnsupportedTargetType             // Generation asked for an unknown representation.
	KindDecode                            // A storage adapter could not decode a value.
)

func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "INVALID_LENGTH"
	case KindInvalidCharacter:
		return "INVALID_CHARACTER"
	case KindTimestampOverflow:
		return "TIMESTAMP_OVERFLOW"
	case KindInputTooLong:
		return "INPUT_TOO_LONG"
	case KindNullInput:
		return "NULL_INPUT"
	case KindUnsupportedTargetType:
		return "UNSUPPORTED_TARGET_TYPE"
	case KindDecode:
		return "DECODE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors, one per Kind. Errors returned by this package match them
// with errors.Is while still carrying a detailed message.
var (
	ErrInvalidLength         = &Error{kind: KindInvalidLength}
	ErrInvalidCharacter      = &Error{kind: KindInvalidCharacter}
	ErrTimestampOverflow     = &Error{kind: KindTimestampOverflow}
	ErrInputTooLong          = &Error{kind: KindInputTooLong}
	ErrNullInput             = &Error{kind: KindNullInput}
	ErrUnsupportedTargetType = &Error{kind: KindUnsupportedTargetType}
	ErrDecode                = &Error{kind: KindDecode}
)

// Error is the structured error returned by this package and its adapters.
//
// It carries a Kind, a human readable message and, for decode failures, the
// offending character. It may wrap an underlying error.
type Error struct {
	kind Kind
	msg  string
	char rune
	err  error
}

// NewError builds an Error of the given kind. cause may be nil.
func NewError(kind Kind, msg string, cause error) error {
	return &Error{kind: kind, msg: msg, err: cause}
}

// DecodeError wraps a failure to turn a stored value back into a ULID.
// The result matches both ErrDecode and whatever cause matches.
func DecodeError(cause error) error {
	return &Error{kind: KindDecode, msg: "ulid: cannot decode stored value", err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.msg
	if msg == "" {
		msg = "ulid: " + e.kind.String()
	}
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

// Kind returns the error classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Char returns the offending character of a KindInvalidCharacter error.
func (e *Error) Char() rune {
	return e.char
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

func errInvalidLength(what string, want, got int) error {
	return &Error{
		kind: KindInvalidLength,
		msg:  fmt.Sprintf("ulid: invalid length: %s must be %d, got %d", what, want, got),
	}
}

func errInvalidCharacter(c rune, pos int) error {
	return &Error{
		kind: KindInvalidCharacter,
		msg:  fmt.Sprintf("ulid: invalid character %q at position %d", c, pos),
		char: c,
	}
}

func errTimestampOverflow(ms uint64) error {
	return &Error{
		kind: KindTimestampOverflow,
		msg:  fmt.Sprintf("ulid: timestamp %d exceeds %d (year 10889)", ms, MaxTimestamp),
	}
}
