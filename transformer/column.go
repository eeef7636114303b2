package transformer

import (
	"database/sql/driver"

	"github.com/sudoitir/ulid"
)

// Column binds a ULID variable to a representation for database/sql.
//
// As a query argument it writes Transform(*ID); as a Scan destination it
// parses the column into *ID.
type Column struct {
	ID *ulid.ULID
	T  ValueTransformer
}

// NewColumn returns a Column over id using t. A nil t stores text.
func NewColumn(t ValueTransformer, id *ulid.ULID) Column {
	if t == nil {
		t = String()
	}
	return Column{ID: id, T: t}
}

// Value implements driver.Valuer.
func (c Column) Value() (driver.Value, error) {
	if c.ID == nil {
		return nil, nil
	}

	v := c.T.Transform(*c.ID)
	if valuer, ok := v.(driver.Valuer); ok {
		return valuer.Value()
	}
	return v, nil
}

// Scan implements sql.Scanner.
func (c Column) Scan(src any) error {
	if c.ID == nil {
		return ulid.NewError(ulid.KindNullInput, "transformer: scan into nil ULID", nil)
	}

	u, err := c.T.Parse(src)
	if err != nil {
		return err
	}
	*c.ID = u
	return nil
}
