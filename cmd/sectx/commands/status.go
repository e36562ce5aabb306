package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/app"
	"go.trai.ch/sectx/internal/ui/output"
	"go.trai.ch/sectx/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <document>",
		Short: "List the cached entries of a document and whether they are still valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.app.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func renderStatus(w io.Writer, st *app.Status) {
	lipgloss.SetColorProfile(output.ColorProfile(w))

	var b strings.Builder
	b.WriteString(style.Heading.Render(st.CachePath))
	b.WriteString("\n")
	if len(st.Entries) == 0 {
		b.WriteString(style.Muted.Render("  no cached entries"))
		b.WriteString("\n")
		_, _ = io.WriteString(w, b.String())
		return
	}

	for _, e := range st.Entries {
		icon, mark := style.Valid.Render(style.Check), style.Valid.Render("valid")
		if !e.Valid() {
			icon, mark = style.Stale.Render(style.Circle), style.Stale.Render(fmt.Sprintf("stale (%d changed)", len(e.Changed)))
		}
		fmt.Fprintf(&b, "  %s %-7s %s %s %s\n",
			icon,
			e.Entry.Variant,
			e.Entry.HeadingPath,
			style.Muted.Render(fmt.Sprintf("%d files", len(e.Entry.FileHashes))),
			mark,
		)
		for _, path := range e.Changed {
			fmt.Fprintf(&b, "      %s %s\n", style.Muted.Render(style.Arrow), path)
		}
	}
	fmt.Fprintf(&b, "%s %s\n", style.Muted.Render("digest"), st.Digest)
	_, _ = io.WriteString(w, b.String())
}
