package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/eomi/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var resetConfig bool

func init() {
	configCmd.Flags().BoolVar(&resetConfig, "reset", false, "Overwrite the config file with the builtin defaults")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the active config, or reset it to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetConfig {
			path, err := config.RebuildConfigFile(configPath)
			if err != nil {
				return err
			}
			log.Infof("Rebuilt config file at: %s", config.GetActiveConfigPath(path))
			return nil
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}
