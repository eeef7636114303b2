package transformer

import (
	"fmt"

	"github.com/sudoitir/ulid"
)

// ValueTransformer renders a ULID into a storable value and parses it back.
type ValueTransformer interface {
	// Transform renders u into the value written to storage.
	Transform(u ulid.ULID) any
	// Parse decodes a stored value. Failures match ulid.ErrDecode.
	Parse(value any) (ulid.ULID, error)
}

//nolint:gochecknoglobals // stateless singletons
var (
	stringInstance      = &stringTransformer{}
	bytesInstance       = &bytesTransformer{}
	passThroughInstance = &passThroughTransformer{}
)

// String returns the transformer storing the canonical text form.
func String() ValueTransformer { return stringInstance }

// Bytes returns the transformer storing the 16-byte binary form.
func Bytes() ValueTransformer { return bytesInstance }

// PassThrough returns the transformer storing the ULID unchanged.
func PassThrough() ValueTransformer { return passThroughInstance }

type stringTransformer struct{}

func (*stringTransformer) Transform(u ulid.ULID) any {
	return u.String()
}

func (*stringTransformer) Parse(value any) (ulid.ULID, error) {
	switch v := value.(type) {
	case nil:
		return ulid.ULID{}, nullInput()
	case string:
		return decode(ulid.Parse(v))
	case []byte:
		if v == nil {
			return ulid.ULID{}, nullInput()
		}
		return decode(ulid.Parse(string(v)))
	default:
		return ulid.ULID{}, unsupported(value)
	}
}

type bytesTransformer struct{}

func (*bytesTransformer) Transform(u ulid.ULID) any {
	return u.Bytes()
}

func (*bytesTransformer) Parse(value any) (ulid.ULID, error) {
	switch v := value.(type) {
	case nil:
		return ulid.ULID{}, nullInput()
	case []byte:
		return decode(ulid.FromBytes(v))
	default:
		return ulid.ULID{}, unsupported(value)
	}
}

type passThroughTransformer struct{}

func (*passThroughTransformer) Transform(u ulid.ULID) any {
	return u
}

func (*passThroughTransformer) Parse(value any) (ulid.ULID, error) {
	switch v := value.(type) {
	case nil:
		return ulid.ULID{}, nullInput()
	case ulid.ULID:
		return v, nil
	case *ulid.ULID:
		if v == nil {
			return ulid.ULID{}, nullInput()
		}
		return *v, nil
	default:
		// Drivers hand back their own column types; let ULID.Scan decode them.
		var u ulid.ULID
		if err := u.Scan(value); err != nil {
			return ulid.ULID{}, err
		}
		return u, nil
	}
}

func decode(u ulid.ULID, err error) (ulid.ULID, error) {
	if err != nil {
		return ulid.ULID{}, ulid.DecodeError(err)
	}
	return u, nil
}

func nullInput() error {
	return ulid.DecodeError(ulid.NewError(ulid.KindNullInput, "transformer: value must not be nil", nil))
}

func unsupported(value any) error {
	return ulid.NewError(ulid.KindDecode, fmt.Sprintf("transformer: unsupported stored type %T", value), nil)
}
