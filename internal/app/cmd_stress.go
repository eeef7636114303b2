package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid"
	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
	"github.com/sudoitir/ulid/internal/pkg/pkgroutine"
)

// stressReport summarizes one generation mode of the stress command.
type stressReport struct {
	Mode       string
	Generated  int
	Duplicates int
	OutOfOrder int
	Elapsed    time.Duration
}

func (r stressReport) violations() int {
	return r.Duplicates + r.OutOfOrder
}

func (a *App) newCmdStress() *cobra.Command {
	var workers, count int64

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Generate identifiers concurrently and verify uniqueness and ordering",
		Long: "stress mints identifiers from several goroutines, once through a shared " +
			"monotonic sequence and once through independent random generation, and " +
			"fails when any duplicate or ordering violation is found.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.override(cmd, "workers", "stress.workers", workers)
			a.override(cmd, "count", "stress.count", count)

			return a.runStress(cmd.Context())
		},
	}

	cmd.Flags().Int64VarP(&workers, "workers", "w", 8, "Number of concurrent workers")
	cmd.Flags().Int64VarP(&count, "count", "c", 10000, "Identifiers generated per worker")

	return cmd
}

func (a *App) runStress(ctx context.Context) error {
	workers := a.config.GetInt("stress.workers")
	count := a.config.GetInt("stress.count")
	if workers < 1 || count < 1 {
		return pkgerror.NewInvalidFormat(
			fmt.Sprintf("workers and count must be positive, got %d and %d", workers, count), nil)
	}

	seq := ulid.NewMonotonic(nil)
	modes := []struct {
		name    string
		next    func() (ulid.ULID, error)
		ordered bool
	}{
		{name: "monotonic", next: seq.Next, ordered: true},
		{name: "random", next: func() (ulid.ULID, error) { return ulid.New(), nil }, ordered: false},
	}

	total := 0
	for _, mode := range modes {
		report, err := stress(ctx, mode.name, int(workers), int(count), mode.next, mode.ordered)
		if err != nil {
			return err
		}

		slog.InfoContext(ctx, "stress mode finished",
			"mode", report.Mode,
			"generated", report.Generated,
			"duplicates", report.Duplicates,
			"out_of_order", report.OutOfOrder,
		)
		fmt.Fprintf(a.stdout, "%-9s generated=%d duplicates=%d out_of_order=%d elapsed=%s\n",
			report.Mode, report.Generated, report.Duplicates, report.OutOfOrder, report.Elapsed.Round(time.Microsecond))

		total += report.violations()
	}

	if total > 0 {
		return fmt.Errorf("%d violations: %w", total, pkgerror.ErrViolation)
	}
	return nil
}

// stress runs workers goroutines that each call next count times and checks
// the combined output.
func stress(ctx context.Context, mode string, workers, count int, next func() (ulid.ULID, error), ordered bool) (stressReport, error) {
	batches := make([][]ulid.ULID, workers)
	mgr := pkgroutine.NewManager(workers)
	start := time.Now()

	for w := range workers {
		ok := mgr.Go(ctx, func(ctx context.Context) error {
			batch := make([]ulid.ULID, 0, count)
			for range count {
				if err := ctx.Err(); err != nil {
					return err
				}
				id, err := next()
				if err != nil {
					return err
				}
				batch = append(batch, id)
			}
			batches[w] = batch
			return nil
		})
		if !ok {
			break
		}
	}

	if err := mgr.Wait(); err != nil {
		return stressReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return stressReport{}, err
	}

	dups, disorder := checkSequences(batches, ordered)
	generated := 0
	for _, b := range batches {
		generated += len(b)
	}

	return stressReport{
		Mode:       mode,
		Generated:  generated,
		Duplicates: dups,
		OutOfOrder: disorder,
		Elapsed:    time.Since(start),
	}, nil
}

// checkSequences counts identifiers seen more than once across batches and,
// when ordered is set, adjacent pairs within a batch that are not strictly
// increasing.
func checkSequences(batches [][]ulid.ULID, ordered bool) (duplicates, outOfOrder int) {
	seen := make(map[ulid.ULID]struct{})
	for _, batch := range batches {
		for i, id := range batch {
			if _, ok := seen[id]; ok {
				duplicates++
			}
			seen[id] = struct{}{}

			if ordered && i > 0 && !batch[i-1].Less(id) {
				outOfOrder++
			}
		}
	}
	return duplicates, outOfOrder
}
