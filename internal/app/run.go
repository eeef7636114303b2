package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
	"github.com/sudoitir/ulid/internal/pkg/pkglog"
)

// Run executes the command line args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx = pkglog.WithCorrelationID(ctx, a.uid.Generate())
	start := time.Now()

	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)

	a.Stop(ctx)

	if err != nil {
		err = pkgerror.FromULID(err)
		slog.DebugContext(ctx, "command failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		fmt.Fprintf(a.stderr, "ulidgen: %v\n", err)
		return pkgerror.ExitCode(err)
	}

	slog.DebugContext(ctx, "command finished", "duration_ms", time.Since(start).Milliseconds())
	return pkgerror.ExitOK
}

// Stop releases resources acquired while running a command.
func (a *App) Stop(ctx context.Context) {
	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
	a.closerFn = nil
}
