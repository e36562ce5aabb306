package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject <document>",
		Short: "Read a prompt from stdin and write it back with the section context spliced in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return zerr.Wrap(err, "failed to read prompt")
			}

			teardown := c.app.EnableInjection()
			defer teardown()

			_, _ = fmt.Fprint(cmd.OutOrStdout(), c.app.Inject(cmd.Context(), args[0], selectorFrom(cmd), string(prompt)))
			return nil
		},
	}
	addSelectorFlags(cmd)
	return cmd
}
