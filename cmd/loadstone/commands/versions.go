package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the published masterlist versions for a game, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, _ := cmd.Flags().GetString("game")
			versions, err := c.app.Versions(cmd.Context(), game)
			if err != nil {
				return err
			}
			for _, v := range versions {
				cmd.Println(v)
			}
			return nil
		},
	}
}

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the mod database from upstream, bypassing all caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, version := gameAndVersion(cmd)
			mods, err := c.app.Refresh(cmd.Context(), game, version)
			if err != nil {
				return err
			}
			cmd.Printf("Rebuilt database for %s: %d mods\n", game, mods)
			return nil
		},
	}
}
