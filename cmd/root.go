package cmd

import (
	"compendex/pkg/config"
	"compendex/pkg/logging"
	"compendex/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootLogger is set by Execute and shared by the subcommands.
var rootLogger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "compendex",
	Short: "Compendex serializes a repository into one LLM-ready document",
	Long: `Compendex scans a directory tree, filters it down to the text files worth
reading, and serializes their paths and contents into a single Markdown,
JSON, or plain-text document for pasting into an LLM context window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configFile string

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional config file (env vars COMPENDEX_* also apply)")
}

// Execute runs the root command with the given logger installed for all
// subcommands.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

// loadConfig resolves the ambient configuration and, when it asks for
// verbose output, rebuilds the shared logger at development verbosity.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose && !rootLogger.Core().Enabled(zapcore.DebugLevel) {
		verbose, err := logging.Setup(true, "compendex", version.Version)
		if err != nil {
			return nil, err
		}
		rootLogger = verbose
	}
	return cfg, nil
}
