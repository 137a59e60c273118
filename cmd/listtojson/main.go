// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the listtojson CLI.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/listtojson/internal/listjson"
	"github.com/pdiddy/listtojson/internal/report"
	"github.com/pdiddy/listtojson/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a word list. It has no subcommands, so any two paths,
// including ones named like commands, reach runConvert.
var rootCmd = &cobra.Command{
	Use:   "listtojson <input_path> <output_path>",
	Short: "Convert a newline-delimited word list into a JSON array",
	Long: `listtojson reads a text file with one word or name per line and writes
the lines as a JSON array of strings, for use as a random name source.

Lines of one character or less are dropped. Spaces are removed from the
remaining lines and surrounding ASCII whitespace is trimmed. Order and
duplicates are kept. By default the array is built without escaping, so a
quote inside a word produces invalid JSON; pass --escape for a strict
encoder.`,
	Version: version,
	Args:    cobra.ExactArgs(2),
	RunE:    runConvert,

	// Without this cobra adds a completion command when the first argument
	// is "completion", shadowing an input file of that name.
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := types.ConvertConfig{
		Escape:     viper.GetBool("escape"),
		ReportPath: viper.GetString("report"),
	}

	stats, err := listjson.ConvertWith(args[0], args[1], listjson.Options{Escape: cfg.Escape})
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		return report.Write(cfg.ReportPath, stats)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./listtojson.yaml or ~/.config/listtojson/listtojson.yaml)")
	rootCmd.Flags().Bool("escape", false, "escape words with a JSON string encoder")
	rootCmd.Flags().String("report", "", "write a YAML summary of the run to this path")

	viper.BindPFlag("escape", rootCmd.Flags().Lookup("escape"))
	viper.BindPFlag("report", rootCmd.Flags().Lookup("report"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("listtojson")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "listtojson"))
		}
	}

	viper.SetEnvPrefix("LISTTOJSON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; conversion stays silent either way.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
