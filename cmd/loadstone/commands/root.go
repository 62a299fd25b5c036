// Package commands implements the CLI commands for loadstone.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/loadstone/loadstone/internal/app"
	"github.com/loadstone/loadstone/internal/engine/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command line interface for loadstone.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	v       *viper.Viper
}

// New creates a new CLI instance with the given app. Flag defaults come
// from an optional loadstone.yaml config file and LOADSTONE_* environment
// variables.
func New(a *app.App) *CLI {
	v := viper.New()
	v.SetConfigName("loadstone")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/loadstone")
	v.SetEnvPrefix("loadstone")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("game", "skyrimse")
	v.SetDefault("masterlist-version", catalog.Latest)
	v.SetDefault("limit", 10)
	// A missing config file is the normal case.
	_ = v.ReadInConfig()

	rootCmd := &cobra.Command{
		Use:           "loadstone",
		Short:         "Load-order analysis and mod search over LOOT masterlists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("game", "g", v.GetString("game"),
		"Game identifier (skyrim, skyrimse, skyrimvr, oblivion, morrowind, fallout3, falloutnv, fallout4, fallout4vr, starfield)")
	rootCmd.PersistentFlags().String("masterlist-version", v.GetString("masterlist-version"),
		"Masterlist version tag, or \"latest\"")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.AddCommand(c.newAnalyzeCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// SetIn redirects command input. Used for testing.
func (c *CLI) SetIn(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// gameAndVersion reads the persistent flags shared by every subcommand.
func gameAndVersion(cmd *cobra.Command) (string, string) {
	game, _ := cmd.Flags().GetString("game")
	version, _ := cmd.Flags().GetString("masterlist-version")
	return game, version
}
