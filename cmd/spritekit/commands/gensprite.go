package commands

import "github.com/spf13/cobra"

func (c *CLI) newGenSpriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gensprite",
		Short: "Generate the sprite enumeration and metadata table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.GenSprite(cmd.Context(), c.dir)
		},
	}
}
