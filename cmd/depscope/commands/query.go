package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depscope/internal/core/domain"
)

func (c *CLI) newQueryCmd(kind domain.QueryKind, use, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var asset string
			if len(args) == 1 {
				asset = args[0]
			}
			return c.app.Query(cmd.Context(), kind, asset, c.opts)
		},
	}
}
