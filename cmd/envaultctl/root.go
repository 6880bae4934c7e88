package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envaultctl",
	Short: "Encrypted dotenv loader",
	Long: `Load configuration from an encrypted .env.vault file or a plaintext
.env file and expose it to a process as environment variables.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
