package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid/internal/pkg/pkgconfig"
	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
	"github.com/sudoitir/ulid/internal/pkg/pkglog"
	"github.com/sudoitir/ulid/internal/pkg/pkguid"
)

func (a *App) initLibraries() {
	if a.uid == nil {
		a.uid = pkguid.NewULID()
	}
}

// initConfig runs once flags are parsed, so --config and --log-level are known.
func (a *App) initConfig(cmd *cobra.Command) error {
	cfg, err := pkgconfig.NewViper(a.configPath)
	if err != nil {
		return pkgerror.NewInvalidFormat("failed to init config", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Set("log.level", a.logLevel)
	}

	a.config = cfg
	a.initClosers()

	return a.initLogging()
}

func (a *App) initLogging() error {
	level, err := pkglog.ParseLevel(a.config.GetString("log.level"))
	if err != nil {
		return pkgerror.NewInvalidFormat("failed to init logging", err)
	}

	pkglog.InitLogging(a.stderr, level)
	return nil
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	cfg := a.config
	a.closerFn["Config"] = func(context.Context) error {
		return cfg.Close()
	}
}
