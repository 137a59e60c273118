// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listtojson/internal/namestore"
)

var clearCmd = &cobra.Command{
	Use:   "clear <names.db>",
	Short: "Forget every name drawn into a used-names database",
	Long: `Clear empties an existing used-names database so every name in the
list can be drawn again. It never creates a database.`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("opening used-names database: %w", err)
	}

	store, err := namestore.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		return err
	}
	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "cleared %d name(s)\n", n)
	return nil
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
