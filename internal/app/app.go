package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid/internal/pkg/pkgconfig"
	"github.com/sudoitir/ulid/internal/pkg/pkguid"
)

// App wires configuration, logging and the ulidgen command tree.
type App struct {
	stdout io.Writer
	stderr io.Writer

	// configuration
	config     pkgconfig.Config
	configPath string
	logLevel   string

	// libraries
	uid pkguid.StringID

	// commands
	root *cobra.Command

	//
	closerFn map[string]func(context.Context) error
}

// New builds the application. Output meant for the user goes to stdout;
// logs and error messages go to stderr.
func New(stdout, stderr io.Writer) *App {
	app := &App{
		stdout: stdout,
		stderr: stderr,
	}

	app.initLibraries()
	app.initCommands()

	return app
}
