// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meeting-recommender CLI.
// The pipeline stages are subcommands: process runs the full extraction
// and recommendation flow, extract inspects a single transcript, and
// index manages the artifact catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the meeting-recommender CLI.
var rootCmd = &cobra.Command{
	Use:   "meeting-recommender",
	Short: "Turn meeting transcripts into action items and resource recommendations",
	Long: `meeting-recommender processes structured meeting transcripts into two
derived artifacts: a deduplicated list of candidate action items, and a
curated resource recommendation for each one.

Each stage is a subcommand: process runs the full pipeline over a directory
of transcripts, extract runs task detection on a single file, and index
catalogs processed artifacts for search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meeting-recommender.yaml or ~/.config/meeting-recommender/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meeting-recommender")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meeting-recommender"))
		}
	}

	viper.SetEnvPrefix("MEETING_RECOMMENDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: explicit flag first, then the
// viper config key, then the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	if v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
