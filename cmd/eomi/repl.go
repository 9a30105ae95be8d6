package main

import (
	"github.com/bastiangx/eomi/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	noFilter   bool
	rootsShown int
)

func init() {
	replCmd.Flags().BoolVar(&noFilter, "no-filter", false, "Score any input, even digits and symbols")
	replCmd.Flags().IntVar(&rootsShown, "roots", 10, "Number of supporting roots to show")
	rootCmd.AddCommand(replCmd)
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Score candidate endings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		extractor, _, err := train(cfg)
		if err != nil {
			return err
		}
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "minScore", cfg.CLI.DefaultMinScore, "roots", rootsShown, "noFilter", noFilter)
		inputHandler := cli.NewInputHandler(extractor, cfg.CLI.DefaultMinScore, cfg.Extractor.MaxRightLength, rootsShown, noFilter)
		return inputHandler.Start()
	},
}
