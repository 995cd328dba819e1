// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the thesis2hugo CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where API key files are looked up when no flag is given.
const secretsDir = ".secrets/"

// rootCmd is the base command for the thesis2hugo CLI.
var rootCmd = &cobra.Command{
	Use:   "thesis2hugo",
	Short: "Convert PDF thesis reports into Hugo Blox publication entries",
	Long: `thesis2hugo scans a folder of PDF thesis reports and produces one Hugo
Blox publication entry per document: a renamed copy of the PDF and a
generated index.md whose title, author, keywords, and summary come from
an LLM summarization service, with metadata-based fallbacks when the
service is unavailable.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./thesis2hugo.yaml or ~/.config/thesis2hugo/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("thesis2hugo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "thesis2hugo"))
		}
	}

	viper.SetEnvPrefix("THESIS2HUGO")
	viper.AutomaticEnv()

	viper.SetDefault("model", types.DefaultModel)
	viper.SetDefault("temperature", types.DefaultTemperature)
	viper.SetDefault("max_tokens", types.DefaultMaxTokens)
	viper.SetDefault("timeout", types.DefaultTimeout)
	viper.SetDefault("out_dir_name", types.DefaultOutDirName)
	viper.SetDefault("year", types.DefaultYear)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
