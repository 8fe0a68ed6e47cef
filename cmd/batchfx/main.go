// Package main provides the batchfx command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batchfx",
		Short: "Relabel and filter VCF records for sequencing batch effects",
		Long: "batchfx applies externally computed batch-effect classifications to a VCF:\n" +
			"records are annotated with FILTER tags and INFO flags, genotypes driven by\n" +
			"protocol artifacts are nulled, and records left without any informative\n" +
			"genotype are dropped.",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.AddCommand(newLabelCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.batchfx.yaml if present. A missing config file is
// not an error.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	viper.SetConfigFile(filepath.Join(home, ".batchfx.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
