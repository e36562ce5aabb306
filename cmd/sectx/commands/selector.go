package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/app"
)

func addSelectorFlags(cmd *cobra.Command) {
	cmd.Flags().String("heading", "", "Select a section by heading path, e.g. \"Project/Design\"")
	cmd.Flags().IntP("line", "l", 0, "Select the section containing a 1-based line")
	cmd.Flags().StringP("find", "f", "", "Select the section whose heading path best matches a fuzzy query")
	cmd.MarkFlagsMutuallyExclusive("heading", "line", "find")
	cmd.MarkFlagsOneRequired("heading", "line", "find")
}

func selectorFrom(cmd *cobra.Command) app.Selector {
	heading, _ := cmd.Flags().GetString("heading")
	line, _ := cmd.Flags().GetInt("line")
	find, _ := cmd.Flags().GetString("find")
	return app.Selector{Heading: heading, Line: line, Find: find}
}
