package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/spritekit/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the quantization cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, _ := cmd.Flags().GetBool("artifacts")

			return c.app.Clean(cmd.Context(), c.dir, app.CleanOptions{
				Artifacts: artifacts,
			})
		},
	}

	cmd.Flags().BoolP("artifacts", "a", false, "Also remove the generated sprite sources")

	return cmd
}
