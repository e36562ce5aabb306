package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/app"
)

func (c *CLI) newInvalidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invalidate <document>",
		Short: "Remove the cached context of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("variant")

			removed, err := c.app.Invalidate(cmd.Context(), args[0], selectorFrom(cmd), app.Target(target))
			if err != nil {
				return err
			}

			noun := "entries"
			if removed == 1 {
				noun = "entry"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s\n", removed, noun)
			return nil
		},
	}
	addSelectorFlags(cmd)
	cmd.Flags().String("variant", string(app.TargetAll), "Entries to remove: files, summary or all")
	return cmd
}
