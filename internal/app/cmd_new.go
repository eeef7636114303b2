package app

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid"
	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
)

func (a *App) newCmdNew() *cobra.Command {
	var (
		count     int64
		monotonic bool
		at        string
		encoding  string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate new ULIDs, one per line",
		Example: "  ulidgen new\n" +
			"  ulidgen new -n 5 --monotonic\n" +
			"  ulidgen new --at 2016-07-30T23:54:10.259Z --encoding uuid",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.override(cmd, "count", "new.count", count)
			a.override(cmd, "monotonic", "new.monotonic", monotonic)
			a.override(cmd, "encoding", "new.encoding", encoding)

			clock := ulid.Now
			if at != "" {
				ms, err := parseAt(at)
				if err != nil {
					return err
				}
				clock = func() uint64 { return ms }
			}

			return a.runNew(cmd.Context(), clock)
		},
	}

	cmd.Flags().Int64VarP(&count, "count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().BoolVar(&monotonic, "monotonic", false, "Keep identifiers strictly increasing within a millisecond")
	cmd.Flags().StringVar(&at, "at", "", "Fixed timestamp as Unix milliseconds or RFC3339")
	cmd.Flags().StringVar(&encoding, "encoding", encodingText, "Output encoding: text|hex|uuid|base64")

	return cmd
}

func (a *App) runNew(ctx context.Context, clock func() uint64) error {
	count := a.config.GetInt("new.count")
	if count < 1 {
		return pkgerror.NewInvalidFormat(fmt.Sprintf("count must be positive, got %d", count), nil)
	}

	encode, err := encoderFor(a.config.GetString("new.encoding"))
	if err != nil {
		return err
	}

	next := func() (ulid.ULID, error) { return ulid.NewAt(clock()) }
	if a.config.GetBool("new.monotonic") {
		next = ulid.NewMonotonic(clock).Next
	}

	slog.DebugContext(ctx, "generating identifiers",
		"count", count,
		"monotonic", a.config.GetBool("new.monotonic"),
		"encoding", a.config.GetString("new.encoding"),
	)

	w := bufio.NewWriter(a.stdout)
	for range count {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, encode(id)); err != nil {
			return pkgerror.NewServer(err)
		}
	}

	return w.Flush()
}

// parseAt reads a timestamp given either as Unix milliseconds or as RFC3339.
func parseAt(s string) (uint64, error) {
	if ms, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ms, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, pkgerror.NewInvalidFormat(fmt.Sprintf("invalid --at value %q", s), err)
	}
	if t.Before(time.UnixMilli(0)) {
		return 0, pkgerror.NewInvalidFormat(fmt.Sprintf("--at %q is before the Unix epoch", s), nil)
	}

	return ulid.Timestamp(t), nil
}
