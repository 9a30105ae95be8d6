package main

import (
	"os"

	"github.com/bastiangx/eomi/internal/logger"
	"github.com/bastiangx/eomi/internal/utils"
	"github.com/bastiangx/eomi/pkg/config"
	"github.com/bastiangx/eomi/pkg/corpus"
	"github.com/bastiangx/eomi/pkg/dictionary"
	"github.com/bastiangx/eomi/pkg/eomi"
	"github.com/bastiangx/eomi/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	corpusPath string
	dictDir    string
	debugMode  bool
	minCount   int
	pruneEvery int
	minScore   float64
	scorerName string
)

var rootCmd = &cobra.Command{
	Use:           AppName,
	Short:         "Unsupervised Korean ending extraction",
	Long:          "Trains an L-R graph on a corpus and serves ending predictions over msgpack IPC.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			log.SetLevel(log.DebugLevel)
			log.SetReportTimestamp(true)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		extractor, dataDir, err := train(cfg)
		if err != nil {
			return err
		}
		srv, err := server.NewServer(extractor, server.OptionsFromConfig(cfg))
		if err != nil {
			return errors.Annotate(err, "init server")
		}
		showStartupInfo(dataDir, extractor.Stats())
		return srv.Start()
	},
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to eomi.toml")
	flags.StringVar(&corpusPath, "corpus", "", "Corpus file, one sentence per line")
	flags.StringVar(&dictDir, "dict", defaults.Dict.Dir, "Directory containing the dictionary files")
	flags.BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")
	flags.IntVar(&minCount, "min-count", defaults.Extractor.MinEojeolCount, "Minimum count of a retained eojeol")
	flags.IntVar(&pruneEvery, "prune-every", defaults.Extractor.PruneEvery, "Prune the eojeol counts every n sentences")
	flags.Float64Var(&minScore, "min-score", defaults.Extractor.MinRScore, "Minimum score of a valid ending")
	flags.StringVar(&scorerName, "scorer", defaults.Extractor.Scorer, "Scoring strategy, empty disables scoring")
}

// loadConfig reads the config file and applies the flags set by the user.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, usedPath, err := config.LoadConfigWithPriority(configPath)
	if err != nil {
		return nil, errors.Annotate(err, "load config")
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dict.Dir = dictDir
	}
	if flags.Changed("min-count") {
		cfg.Extractor.MinEojeolCount = minCount
	}
	if flags.Changed("prune-every") {
		cfg.Extractor.PruneEvery = pruneEvery
	}
	if flags.Changed("min-score") {
		cfg.Extractor.MinRScore = minScore
		cfg.CLI.DefaultMinScore = minScore
	}
	if flags.Changed("scorer") {
		cfg.Extractor.Scorer = scorerName
	}
	return cfg, nil
}

// train loads the dictionaries and trains an extractor on the corpus flag.
func train(cfg *config.Config) (*eomi.Extractor, string, error) {
	if corpusPath == "" {
		return nil, "", errors.NotValidf("missing --corpus")
	}
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, "", errors.Annotate(err, "init path resolver")
	}
	dataDir, err := pathResolver.GetDataDir(cfg.Dict.Dir)
	if err != nil {
		return nil, "", errors.Annotate(err, "resolve data dir")
	}
	log.Debugf("Using data dir at: %s", dataDir)
	if debugMode {
		log.Debug("data dir diagnostics", "candidates", pathResolver.DiagnosePathIssues(cfg.Dict.Dir)["data_dir_candidates"])
	}

	scorer, err := eomi.LookupScorer(cfg.Extractor.Scorer)
	if err != nil {
		return nil, "", err
	}
	if scorer == nil {
		log.Warn("No scorer configured, predictions are disabled")
	}

	lg := logger.New("Eomi")
	if debugMode {
		lg = logger.NewWithConfig("Eomi", log.DebugLevel, true, true, log.TextFormatter)
	}
	options := []eomi.Option{eomi.WithScorer(scorer), eomi.WithLogger(lg)}
	if cfg.Extractor.Verbose {
		options = append(options, eomi.WithObserver(newBarObserver(os.Stderr)))
	}
	extractor, err := eomi.Load(dictionary.NewDirLoader(dataDir), cfg.Dict.Paths(), nil, cfg.Extractor.Options(), options...)
	if err != nil {
		return nil, "", errors.Annotate(err, "load dictionaries")
	}

	f, err := os.Open(corpusPath)
	if err != nil {
		return nil, "", errors.Annotatef(err, "open corpus %s", corpusPath)
	}
	defer f.Close()
	reader := corpus.NewReader(f)
	if err := extractor.Train(reader.Sentences()); err != nil {
		return nil, "", err
	}
	if err := reader.Err(); err != nil {
		return nil, "", errors.Annotatef(err, "read corpus %s", corpusPath)
	}
	return extractor, dataDir, nil
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, stats eomi.Stats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("graph", "eojeols", stats.Eojeols, "lefts", stats.Lefts, "rights", stats.Rights, "pairs", stats.Pairs)
	log.Info("status: ready")
	log.SetLevel(currentLevel)
}
