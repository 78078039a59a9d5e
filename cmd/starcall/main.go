// Package main provides the starcall command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "starcall",
		Short:   "Pharmacogenomic star-allele caller",
		Long:    "starcall calls star-allele diplotypes and metabolizer phenotypes from consumer genotyping data.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newGenesCmd())
	root.AddCommand(newResultsCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.starcall.yaml if present.
func initConfig() error {
	viper.SetConfigName(".starcall")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("STARCALL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds the CLI logger. Debug level requires --verbose.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// defaultSampleID derives a sample id from the input path.
func defaultSampleID(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	for _, suffix := range []string{".gz", ".txt", ".csv", ".tsv", ".vcf"} {
		base = strings.TrimSuffix(base, suffix)
	}
	return base
}
