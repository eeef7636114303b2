package transformer

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudoitir/ulid"

	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE records (
		text_id TEXT NOT NULL,
		bin_id BLOB NOT NULL,
		raw_id TEXT NOT NULL,
		parent_id TEXT
	)`)
	require.NoError(t, err)

	return db
}

func TestColumnRoundTripThroughSQLite(t *testing.T) {
	db := openInMemoryDB(t)

	id := ulid.New()
	_, err := db.Exec(
		`INSERT INTO records (text_id, bin_id, raw_id, parent_id) VALUES (?, ?, ?, ?)`,
		NewColumn(String(), &id),
		NewColumn(Bytes(), &id),
		NewColumn(PassThrough(), &id),
		nil,
	)
	require.NoError(t, err)

	var (
		textID, binID, rawID ulid.ULID
		parent               ulid.NullULID
	)
	err = db.QueryRow(`SELECT text_id, bin_id, raw_id, parent_id FROM records`).Scan(
		NewColumn(String(), &textID),
		NewColumn(Bytes(), &binID),
		NewColumn(PassThrough(), &rawID),
		&parent,
	)
	require.NoError(t, err)

	assert.Equal(t, id, textID)
	assert.Equal(t, id, binID)
	assert.Equal(t, id, rawID)
	assert.False(t, parent.Valid)
}

func TestColumnStoresCanonicalForms(t *testing.T) {
	db := openInMemoryDB(t)

	id := ulid.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	_, err := db.Exec(
		`INSERT INTO records (text_id, bin_id, raw_id) VALUES (?, ?, ?)`,
		NewColumn(String(), &id),
		NewColumn(Bytes(), &id),
		id,
	)
	require.NoError(t, err)

	var (
		text, raw string
		bin       []byte
	)
	err = db.QueryRow(`SELECT text_id, bin_id, raw_id FROM records`).Scan(&text, &bin, &raw)
	require.NoError(t, err)

	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", text)
	assert.Equal(t, id.Bytes(), bin)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", raw)
}

func TestColumnTextOrderMatchesGenerationOrder(t *testing.T) {
	db := openInMemoryDB(t)

	m := ulid.NewMonotonic(nil)
	var want []ulid.ULID
	for i := 0; i < 50; i++ {
		id, err := m.Next()
		require.NoError(t, err)
		want = append(want, id)
	}
	// Insert in reverse so the ORDER BY does the work.
	for i := len(want) - 1; i >= 0; i-- {
		_, err := db.Exec(
			`INSERT INTO records (text_id, bin_id, raw_id) VALUES (?, ?, ?)`,
			NewColumn(String(), &want[i]),
			NewColumn(Bytes(), &want[i]),
			want[i],
		)
		require.NoError(t, err)
	}

	for _, col := range []string{"text_id", "bin_id"} {
		rows, err := db.Query(`SELECT ` + col + ` FROM records ORDER BY ` + col)
		require.NoError(t, err)

		t2 := String()
		if col == "bin_id" {
			t2 = Bytes()
		}

		var got []ulid.ULID
		for rows.Next() {
			var id ulid.ULID
			require.NoError(t, rows.Scan(NewColumn(t2, &id)))
			got = append(got, id)
		}
		require.NoError(t, rows.Err())
		require.NoError(t, rows.Close())

		assert.Equal(t, want, got, "ordering by %s", col)
	}
}

func TestColumnScanMalformed(t *testing.T) {
	db := openInMemoryDB(t)

	_, err := db.Exec(`INSERT INTO records (text_id, bin_id, raw_id) VALUES ('not-a-ulid', x'00', 'x')`)
	require.NoError(t, err)

	var id ulid.ULID
	err = db.QueryRow(`SELECT text_id FROM records`).Scan(NewColumn(String(), &id))
	require.ErrorIs(t, err, ulid.ErrDecode)

	err = db.QueryRow(`SELECT bin_id FROM records`).Scan(NewColumn(Bytes(), &id))
	require.ErrorIs(t, err, ulid.ErrInvalidLength)
}

func TestColumnNilTarget(t *testing.T) {
	c := NewColumn(nil, nil)
	v, err := c.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.ErrorIs(t, c.Scan("01ARZ3NDEKTSV4RRFFQ69G5FAV"), ulid.ErrNullInput)
}
