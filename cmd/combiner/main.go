package main

import (
	"fmt"
	"os"

	"github.com/iangfernandes96/combiner/internal/config"
	"github.com/iangfernandes96/combiner/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:               "combiner",
	Short:             "Combine two images by interleaving their pixel data",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Environment file with COMBINER_* defaults")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")
}

func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")

	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}

	log, err = logger.New(os.Stderr, logger.Options{Dir: cfg.LogDir, Verbose: cfg.Verbose})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log.Debug("%s %v", cmd.Name(), args)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
