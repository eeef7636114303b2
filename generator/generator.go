// Package generator produces fresh ULIDs coerced to the representation a
// persistence layer asks for.
//
// An ORM adapter discovers the identifier field itself and then calls
// Generate with the matching Target, or Into with a pointer to the field.
package generator

import (
	"fmt"

	"github.com/sudoitir/ulid"
)

// Target is the representation of a generated identifier.
type Target int

const (
	TargetUnknown Target = iota // Not a supported representation.
	TargetULID                  // A ulid.ULID value.
	TargetString                // The 26-character canonical text.
	TargetBytes                 // The 16-byte big-endian form.
)

func (t Target) String() string {
	switch t {
	case TargetULID:
		return "ulid"
	case TargetString:
		return "string"
	case TargetBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget maps a target name ("ulid", "string" or "bytes") to a Target.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "ulid":
		return TargetULID, nil
	case "string", "text":
		return TargetString, nil
	case "bytes", "binary":
		return TargetBytes, nil
	default:
		return TargetUnknown, unsupported(name)
	}
}

// Generate returns a new random ULID rendered as target.
func Generate(target Target) (any, error) {
	switch target {
	case TargetULID:
		return ulid.New(), nil
	case TargetString:
		return ulid.New().String(), nil
	case TargetBytes:
		return ulid.New().Bytes(), nil
	default:
		return nil, unsupported(target)
	}
}

// Into stores a new random ULID into dst, which must be a non-nil
// *ulid.ULID, *string or *[]byte.
func Into(dst any) error {
	switch p := dst.(type) {
	case *ulid.ULID:
		if p != nil {
			*p = ulid.New()
			return nil
		}
	case *string:
		if p != nil {
			*p = ulid.New().String()
			return nil
		}
	case *[]byte:
		if p != nil {
			*p = ulid.New().Bytes()
			return nil
		}
	case nil:
	default:
		return unsupported(fmt.Sprintf("%T", dst))
	}

	return ulid.NewError(ulid.KindNullInput, "generator: destination must not be nil", nil)
}

// TargetOf reports the Target matching the type of v, which may be a value or
// a pointer to one.
func TargetOf(v any) Target {
	switch v.(type) {
	case ulid.ULID, *ulid.ULID:
		return TargetULID
	case string, *string:
		return TargetString
	case []byte, *[]byte:
		return TargetBytes
	default:
		return TargetUnknown
	}
}

func unsupported(target any) error {
	return ulid.NewError(
		ulid.KindUnsupportedTargetType,
		fmt.Sprintf("generator: unsupported target type: %v", target),
		nil,
	)
}
