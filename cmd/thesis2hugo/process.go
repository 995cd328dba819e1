// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/thesis2hugo/internal/analyze"
	"github.com/pdiddy/thesis2hugo/internal/pipeline"
	"github.com/pdiddy/thesis2hugo/internal/secrets"
	"github.com/pdiddy/thesis2hugo/pkg/types"
)

// placeholderKey is the sample value shipped in documentation; a run
// with it would only burn requests against a rejected token.
const placeholderKey = "your_perplexity_api_key_here"

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process all PDF files under a folder into publication entries",
	Long: `Process recursively locates PDF files under the base folder, analyzes
each one with the summarization service, and writes per-document output
folders beneath <base-folder>/out/. With --test only the first located
PDF is processed, as a quick manual check of the setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, _ := cmd.Flags().GetString("api-key")
		baseFolder, _ := cmd.Flags().GetString("base-folder")
		testMode, _ := cmd.Flags().GetBool("test")

		out := cmd.OutOrStdout()

		if apiKey == "" {
			apiKey = secrets.APIKey(secretsDir)
		}
		if apiKey == "" || apiKey == placeholderKey {
			fmt.Fprintln(out, "Please set your Perplexity API key (flag --api-key or .secrets/perplexity-api-key).")
			return nil
		}
		if _, err := os.Stat(baseFolder); err != nil {
			fmt.Fprintf(out, "Folder %s does not exist. Please check the path.\n", baseFolder)
			return nil
		}

		cfg := types.ProcessConfig{
			AIConfig: types.AIConfig{
				Model:       viper.GetString("model"),
				APIKey:      apiKey,
				Temperature: viper.GetFloat64("temperature"),
				MaxTokens:   viper.GetInt("max_tokens"),
				Timeout:     viper.GetDuration("timeout"),
			},
			BaseFolder: baseFolder,
			OutDirName: viper.GetString("out_dir_name"),
			Year:       viper.GetString("year"),
		}
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Model = model
		}
		cfg.ApplyDefaults()

		runner := pipeline.New(cfg, analyze.NewClient(cfg.AIConfig))
		_, err := runner.Run(cmd.Context(), testMode, out)
		return err
	},
}

func init() {
	processCmd.Flags().String("api-key", "", "Perplexity API key (falls back to .secrets/perplexity-api-key)")
	processCmd.Flags().String("base-folder", "", "path to the folder containing PDFs")
	processCmd.Flags().Bool("test", false, "process only one PDF and stop (for testing)")
	processCmd.Flags().String("model", "", "summarization model identifier (default from config)")
	processCmd.MarkFlagRequired("base-folder")

	rootCmd.AddCommand(processCmd)
}
