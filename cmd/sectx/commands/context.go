package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/core/domain"
)

func (c *CLI) newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context <document>",
		Short: "Print the context that applies to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyToClipboard, _ := cmd.Flags().GetBool("copy")
			sel := selectorFrom(cmd)

			if copyToClipboard {
				content, err := c.app.CopyContext(cmd.Context(), args[0], sel)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d bytes of context to the clipboard\n", len(content))
				return nil
			}

			content, ok := c.app.GetContext(cmd.Context(), args[0], sel)
			if !ok {
				return domain.ErrEntryNotFound
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
	addSelectorFlags(cmd)
	cmd.Flags().BoolP("copy", "c", false, "Copy the context to the clipboard instead of printing it")
	return cmd
}
