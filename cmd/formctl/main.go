package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formctl/internal/config"
	"github.com/goliatone/go-formctl/internal/logging"
)

// annotationInteractive marks commands that own the terminal.
const annotationInteractive = "interactive"

var (
	configPath     string
	verbose        bool
	storageBackend string
	storagePath    string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formctl",
	Short: "Fill, validate and persist the gestor de tráfego application form",
	Long: `formctl drives a form controller from the terminal.

Answers are validated field by field, submitted records are written to a
single storage key and a form_submit analytics event is emitted for every
successful submission. Aborting a session saves the answers as a draft.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath,
			config.WithVerbose(verbose),
			config.WithStorage(storageBackend, storagePath),
		)
		if err != nil {
			return err
		}
		var logOpts []logging.Option
		if cmd.Annotations[annotationInteractive] == "true" && !verbose {
			logOpts = append(logOpts, logging.WithConsoleFloor(zapcore.WarnLevel))
		}
		logger, err = logging.New(cfg.Log, logOpts...)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (memory, file, sqlite)")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage-path", "", "storage directory or database file")

	rootCmd.AddCommand(fillCmd, showCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
