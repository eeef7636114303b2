package app

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/sudoitir/ulid"
	"github.com/sudoitir/ulid/compat"
	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Output formats accepted by --output and output.format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// details is the decoded view of one identifier printed by inspect.
type details struct {
	ULID      string `json:"ulid" yaml:"ulid"`
	Timestamp uint64 `json:"timestamp" yaml:"timestamp"`
	Time      string `json:"time" yaml:"time"`
	Hi        string `json:"hi" yaml:"hi"`
	Lo        string `json:"lo" yaml:"lo"`
	Hex       string `json:"hex" yaml:"hex"`
	UUID      string `json:"uuid" yaml:"uuid"`
	Hash      uint32 `json:"hash" yaml:"hash"`
}

func newDetails(id ulid.ULID) details {
	return details{
		ULID:      id.String(),
		Timestamp: id.Timestamp(),
		Time:      id.Time().Format(timeLayout),
		Hi:        fmt.Sprintf("0x%016x", id.Hi()),
		Lo:        fmt.Sprintf("0x%016x", id.Lo()),
		Hex:       hex.EncodeToString(id.Bytes()),
		UUID:      compat.ToUUID(id).String(),
		Hash:      id.Hash(),
	}
}

func renderDetails(w io.Writer, format string, items []details) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, d := range items {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "ulid\t%s\n", d.ULID)
			fmt.Fprintf(tw, "timestamp\t%d\n", d.Timestamp)
			fmt.Fprintf(tw, "time\t%s\n", d.Time)
			fmt.Fprintf(tw, "hi\t%s\n", d.Hi)
			fmt.Fprintf(tw, "lo\t%s\n", d.Lo)
			fmt.Fprintf(tw, "hex\t%s\n", d.Hex)
			fmt.Fprintf(tw, "uuid\t%s\n", d.UUID)
			fmt.Fprintf(tw, "hash\t%s\n", strconv.FormatUint(uint64(d.Hash), 10))
		}
		return tw.Flush()
	default:
		return pkgerror.NewInvalidFormat(fmt.Sprintf("unknown output format %q", format), nil)
	}
}

// Encodings accepted by new --encoding and new.encoding.
const (
	encodingText   = "text"
	encodingHex    = "hex"
	encodingUUID   = "uuid"
	encodingBase64 = "base64"
)

type encoder func(ulid.ULID) string

func encoderFor(name string) (encoder, error) {
	switch name {
	case encodingText:
		return ulid.ULID.String, nil
	case encodingHex:
		return func(id ulid.ULID) string { return hex.EncodeToString(id.Bytes()) }, nil
	case encodingUUID:
		return func(id ulid.ULID) string { return compat.ToUUID(id).String() }, nil
	case encodingBase64:
		return func(id ulid.ULID) string { return base64.StdEncoding.EncodeToString(id.Bytes()) }, nil
	default:
		return nil, pkgerror.NewInvalidFormat(fmt.Sprintf("unknown encoding %q", name), nil)
	}
}
