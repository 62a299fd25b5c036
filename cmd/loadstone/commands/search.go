package commands

import (
	"encoding/json"
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the masterlist for relevant mods",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, version := gameAndVersion(cmd)
			limit, _ := cmd.Flags().GetInt("limit")

			hits, err := c.app.Search(cmd.Context(), game, version, strings.Join(args, " "), limit)
			if err != nil {
				return err
			}

			compact, _ := cmd.Flags().GetBool("compact")
			if compact {
				return printCompact(cmd, hits)
			}
			printHits(cmd, hits)
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", c.v.GetInt("limit"), "Maximum number of results")
	cmd.Flags().Bool("compact", false, "Emit compact JSON lines for machine consumption")
	return cmd
}

func printHits(cmd *cobra.Command, hits []domain.SearchHit) {
	if len(hits) == 0 {
		cmd.Println("No results.")
		return
	}
	for i, h := range hits {
		cmd.Printf("%2d. %s  (score %.3f = bm25 %.3f x authority %.2f x name %.2f)\n",
			i+1, h.ModName, h.Score, h.Breakdown.BM25, h.Breakdown.AuthorityBoost, h.Breakdown.NameBoost)
		if h.Snippet != "" {
			cmd.Printf("    %s\n", h.Snippet)
		}
		if len(h.MatchedTerms) > 0 {
			cmd.Printf("    matched: %s\n", strings.Join(h.MatchedTerms, ", "))
		}
		if h.NexusModID != "" {
			cmd.Printf("    nexus: %s\n", h.NexusModID)
		}
	}
}

func printCompact(cmd *cobra.Command, hits []domain.SearchHit) error {
	for _, h := range hits {
		line, err := json.Marshal(h.Compact())
		if err != nil {
			return zerr.Wrap(err, "failed to encode search hit")
		}
		cmd.Println(string(line))
	}
	return nil
}
