package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/app"
	"go.trai.ch/sectx/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <document>",
		Short: "Build the cached context of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("variant")
			variants, err := app.Target(name).Variants()
			if err != nil {
				return err
			}

			var entries []*domain.Entry
			if len(variants) == 1 {
				var entry *domain.Entry
				entry, err = c.app.Build(cmd.Context(), args[0], selectorFrom(cmd), variants[0])
				if entry != nil {
					entries = append(entries, entry)
				}
			} else {
				entries, err = c.app.BuildVariants(cmd.Context(), args[0], selectorFrom(cmd), variants)
			}
			if errors.Is(err, domain.ErrNoLinks) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No file links found in this section or its ancestors, nothing cached.")
				return nil
			}

			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cached %s context for %s (%d files)\n",
					entry.Variant, entry.HeadingPath, len(entry.FileHashes))
			}
			return err
		},
	}
	addSelectorFlags(cmd)
	cmd.Flags().String("variant", string(domain.VariantFiles), "Content to cache: files, summary or all")
	return cmd
}
