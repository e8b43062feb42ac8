package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depscope/internal/app"
)

func (c *CLI) newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive session that keeps indexes between queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Session(cmd.Context(), cmd.InOrStdin(), app.SessionOptions{
				Options: c.opts,
				Watch:   watch,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Report file changes that make the session indexes stale")
	return cmd
}
