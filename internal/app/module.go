package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
)

func (a *App) initCommands() {
	root := &cobra.Command{
		Use:   "ulidgen",
		Short: "Generate and inspect ULIDs",
		Long: "ulidgen generates Universally Unique Lexicographically Sortable Identifiers " +
			"and decodes existing ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return pkgerror.NewInvalidFormat("", err)
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("ULIDGEN_CONFIG"), "Path to a YAML/JSON/TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	root.AddCommand(
		a.newCmdNew(),
		a.newCmdInspect(),
		a.newCmdIncrement(),
		a.newCmdStress(),
	)

	a.root = root
}

// override copies a flag into the config when the user set it explicitly,
// so flags win over file and environment values.
func (a *App) override(cmd *cobra.Command, flag, key string, value any) {
	if cmd.Flags().Changed(flag) {
		a.config.Set(key, value)
	}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return pkgerror.NewInvalidFormat("", err)
		}
		return nil
	}
}
