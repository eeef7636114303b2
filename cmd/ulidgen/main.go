package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sudoitir/ulid/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := app.New(os.Stdout, os.Stderr).Run(ctx, os.Args[1:]) // Run the command line and collect its exit code
	stop()

	os.Exit(code)
}
