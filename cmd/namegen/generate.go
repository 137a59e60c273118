// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/listtojson/internal/namegen"
	"github.com/pdiddy/listtojson/internal/namestore"
	"github.com/pdiddy/listtojson/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <list.json>",
	Short: "Draw unique random names from a converted list",
	Long: `Generate loads a JSON array written by listtojson and prints random
names from it, one per line, never repeating a name. With --db the drawn
names are remembered in a SQLite database so later runs keep avoiding
them; use the clear command to start over.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := types.GenerateConfig{
		Count:  viper.GetInt("generate.count"),
		DBPath: viper.GetString("generate.db"),
		Seed:   viper.GetUint64("generate.seed"),
	}
	if cfg.Count <= 0 {
		cfg.Count = 1
	}

	names, err := namegen.Load(args[0])
	if err != nil {
		return err
	}

	var used namegen.UsedSet
	if cfg.DBPath != "" {
		store, err := namestore.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		used = store
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	gen, err := namegen.New(names, used, rng)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < cfg.Count; i++ {
		name, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("drawing name %d of %d: %w", i+1, cfg.Count, err)
		}
		fmt.Fprintln(out, name)
	}
	return nil
}

func init() {
	generateCmd.Flags().IntP("count", "n", 1, "number of names to draw")
	generateCmd.Flags().String("db", "", "SQLite database that remembers drawn names across runs")
	generateCmd.Flags().Uint64("seed", 0, "fixed random seed (0 picks one)")

	viper.BindPFlag("generate.count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("generate.db", generateCmd.Flags().Lookup("db"))
	viper.BindPFlag("generate.seed", generateCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(generateCmd)
}
