/*
Package config manages the TOML config of the eomi extractor and its servers.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/eomi/internal/utils"
	"github.com/bastiangx/eomi/pkg/dictionary"
	"github.com/bastiangx/eomi/pkg/eomi"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config dir.
const FileName = "eomi.toml"

// Config holds the entire config structure
type Config struct {
	Extractor ExtractorConfig `toml:"extractor"`
	Dict      DictConfig      `toml:"dict"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// ExtractorConfig holds training and scoring options.
type ExtractorConfig struct {
	MinEojeolCount int     `toml:"min_eojeol_count"`
	PruneEvery     int     `toml:"prune_every"`
	MaxLeftLength  int     `toml:"max_left_length"`
	MaxRightLength int     `toml:"max_right_length"`
	MinRScore      float64 `toml:"min_r_score"`
	Scorer         string  `toml:"scorer"`
	Verbose        bool    `toml:"verbose"`
}

// DictConfig holds dictionary locations.
type DictConfig struct {
	Dir             string   `toml:"dir"`
	NounFiles       []string `toml:"noun_files"`
	RootFiles       []string `toml:"root_files"`
	ComposableFiles []string `toml:"composable_files"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	CacheSize    int  `toml:"cache_size"`
	EnableFilter bool `toml:"enable_filter"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int     `toml:"default_limit"`
	DefaultMinScore float64 `toml:"default_min_score"`
}

// Options converts the extractor section to training options.
func (c ExtractorConfig) Options() eomi.Options {
	return eomi.Options{
		MinEojeolCount: c.MinEojeolCount,
		PruneEvery:     c.PruneEvery,
		MaxLeftLength:  c.MaxLeftLength,
		MaxRightLength: c.MaxRightLength,
		Verbose:        c.Verbose,
	}
}

// Paths converts the dict section to dictionary resource names.
func (c DictConfig) Paths() dictionary.Paths {
	return dictionary.Paths{
		Nouns:      c.NounFiles,
		Roots:      c.RootFiles,
		Composable: c.ComposableFiles,
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. utils.UserConfigDir (XDG_CONFIG_HOME, ~/.config or APPDATA)
// 2. Current executable dir
func GetConfigDir() (string, error) {
	primaryPath, err := utils.UserConfigDir()
	if err != nil {
		log.Errorf("Failed to get config directory: %v", err)
		return utils.GetExecutableDir()
	}
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for eomi.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: GetConfigDir()/eomi.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := eomi.DefaultOptions()
	paths := dictionary.DefaultPaths()
	return &Config{
		Extractor: ExtractorConfig{
			MinEojeolCount: opts.MinEojeolCount,
			PruneEvery:     opts.PruneEvery,
			MaxLeftLength:  opts.MaxLeftLength,
			MaxRightLength: opts.MaxRightLength,
			MinRScore:      eomi.DefaultMinRScore,
			Scorer:         "",
			Verbose:        opts.Verbose,
		},
		Dict: DictConfig{
			Dir:             "data/",
			NounFiles:       paths.Nouns,
			RootFiles:       paths.Roots,
			ComposableFiles: paths.Composable,
		},
		Server: ServerConfig{
			MaxLimit:     100,
			CacheSize:    4096,
			EnableFilter: false,
		},
		CLI: CliConfig{
			DefaultLimit:    20,
			DefaultMinScore: eomi.DefaultMinRScore,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages the well-typed keys of a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "extractor"); ok {
		extractExtractorConfig(section, &config.Extractor)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractExtractorConfig(data map[string]any, ex *ExtractorConfig) {
	if val, ok := utils.ExtractInt64(data, "min_eojeol_count"); ok {
		ex.MinEojeolCount = val
	}
	if val, ok := utils.ExtractInt64(data, "prune_every"); ok {
		ex.PruneEvery = val
	}
	if val, ok := utils.ExtractInt64(data, "max_left_length"); ok {
		ex.MaxLeftLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_right_length"); ok {
		ex.MaxRightLength = val
	}
	if val, ok := utils.ExtractFloat64(data, "min_r_score"); ok {
		ex.MinRScore = val
	}
	if val, ok := utils.ExtractString(data, "scorer"); ok {
		ex.Scorer = val
	}
	if val, ok := utils.ExtractBool(data, "verbose"); ok {
		ex.Verbose = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		dict.Dir = val
	}
	if val, ok := utils.ExtractStrings(data, "noun_files"); ok {
		dict.NounFiles = val
	}
	if val, ok := utils.ExtractStrings(data, "root_files"); ok {
		dict.RootFiles = val
	}
	if val, ok := utils.ExtractStrings(data, "composable_files"); ok {
		dict.ComposableFiles = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractFloat64(data, "default_min_score"); ok {
		cli.DefaultMinScore = val
	}
}

// RebuildConfigFile overwrites configPath with the builtin defaults.
// An empty configPath means the default path.
func RebuildConfigFile(configPath string) (string, error) {
	if configPath == "" {
		defaultPath, err := GetDefaultConfigPath()
		if err != nil {
			return "", err
		}
		configPath = defaultPath
	}
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return "", err
	}
	return configPath, SaveConfig(DefaultConfig(), configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
