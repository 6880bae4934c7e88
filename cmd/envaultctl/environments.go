package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/envault/pkg/config"
	"github.com/doodlesbykumbi/envault/pkg/vault"
)

// environmentsCmd represents the environments command
var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List the environments packed into a vault file",
	Long: `List the deployment environments present in the vault file, in file
order. Only environment names are printed, never ciphertext or keys.

Example:
  envaultctl environments
  envaultctl environments --cwd /srv/app`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, _ := cmd.Flags().GetString("cwd")

		cfg, err := config.Load(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(1)
		}

		path := filepath.Join(cwd, cfg.VaultFile)
		text, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(1)
		}

		store, err := vault.ParseStore(string(text))
		if err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(1)
		}

		for _, environment := range store.Environments() {
			fmt.Println(environment)
		}
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
	environmentsCmd.Flags().String("cwd", "", "Directory holding the vault file")
}
