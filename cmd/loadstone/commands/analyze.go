package commands

import (
	"io"
	"os"

	"github.com/loadstone/loadstone/internal/engine/conflict"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [loadorder-file]",
		Short: "Analyze a plugin load order for conflicts",
		Long: "Analyze a plugin load order against the LOOT masterlist. Reads the\n" +
			"load order from the given file, or from stdin when the argument is\n" +
			"omitted or \"-\". Accepts plugins.txt, loadorder.txt and mod-manager\n" +
			"export formats.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			game, version := gameAndVersion(cmd)
			report, err := c.app.Analyze(cmd.Context(), game, version, text)
			if err != nil {
				return err
			}

			dense, _ := cmd.Flags().GetBool("dense")
			if dense {
				cmd.Print(conflict.RenderDense(report))
			} else {
				cmd.Print(conflict.RenderText(report))
			}
			return nil
		},
	}
	cmd.Flags().Bool("dense", false, "Emit the single-line-per-conflict machine format")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", zerr.Wrap(err, "failed to read load order from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0]) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.Wrap(err, "failed to read load order file")
	}
	return string(data), nil
}
