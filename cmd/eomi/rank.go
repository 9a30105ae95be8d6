package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bastiangx/eomi/pkg/lrgraph"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var rankLimit int

func init() {
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Number of endings to show (default from config)")
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the extracted endings, best first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		extractor, _, err := train(cfg)
		if err != nil {
			return err
		}
		limit := rankLimit
		if limit < 1 {
			limit = cfg.CLI.DefaultLimit
		}
		endings, err := extractor.Extract(cfg.CLI.DefaultMinScore, limit)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("rank", "ending", "score", "support", "composable", "total", "top roots")
		for i, p := range endings {
			roots := lo.Map(lo.Slice(p.Roots, 0, 3), func(e lrgraph.Edge, _ int) string { return e.Word })
			if err := table.Append([]string{
				strconv.Itoa(i + 1),
				"-" + p.Ending,
				fmt.Sprintf("%.3f", p.Score),
				strconv.Itoa(p.Support),
				strconv.Itoa(p.Composable),
				strconv.Itoa(p.Total),
				fmt.Sprint(roots),
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}

		stats := extractor.Stats()
		fmt.Printf("%d endings, %d of %d eojeols covered\n", len(endings), stats.CoveredEojeols, stats.Eojeols)
		return nil
	},
}
