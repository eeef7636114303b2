package app

import (
	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid"
	"github.com/sudoitir/ulid/compat"
)

func (a *App) newCmdInspect() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect ULID...",
		Short: "Decode ULIDs into their timestamp and random components",
		Example: "  ulidgen inspect 01ARZ3NDEKTSV4RRFFQ69G5FAV\n" +
			"  ulidgen inspect --output json 01563e3a-b5d3-d676-4c61-efb99302bd5b",
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.override(cmd, "output", "output.format", output)

			items := make([]details, 0, len(args))
			for _, arg := range args {
				id, err := parseAny(arg)
				if err != nil {
					return err
				}
				items = append(items, newDetails(id))
			}

			return renderDetails(a.stdout, a.config.GetString("output.format"), items)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text|json|yaml")

	return cmd
}

// parseAny accepts the canonical text form or the hyphenated UUID form.
func parseAny(s string) (ulid.ULID, error) {
	if len(s) == 36 {
		return compat.ParseUUID(s)
	}
	return ulid.Parse(s)
}
