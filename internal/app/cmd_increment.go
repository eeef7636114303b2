package app

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudoitir/ulid/internal/pkg/pkgerror"
)

func (a *App) newCmdIncrement() *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:     "increment ULID",
		Short:   "Print the identifiers that follow ULID within its millisecond",
		Example: "  ulidgen increment -n 3 01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			if count < 1 {
				return pkgerror.NewInvalidFormat(fmt.Sprintf("count must be positive, got %d", count), nil)
			}

			id, err := parseAny(args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.stdout)
			for range count {
				id = id.Increment()
				fmt.Fprintln(w, id)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64VarP(&count, "count", "n", 1, "Number of successors to print")

	return cmd
}
