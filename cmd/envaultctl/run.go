package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/envault/pkg/config"
	"github.com/doodlesbykumbi/envault/pkg/loader"
)

// Exit codes for failures before and during child execution. The child
// process's own exit code is propagated untouched.
const (
	exitLoadFailed = 78 // EX_CONFIG
	exitExecFailed = 126
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command with the resolved environment",
	Long: `Load the .env.vault file (or fall back to plaintext env files) and run
the given command with the resolved environment variables.

The environment is fully resolved before the command starts; if loading
fails the command is never executed and envaultctl exits with a distinct
non-zero code.

Example:
  envaultctl run -- ./my-server --port 8080
  envaultctl run --cwd /srv/app --override -- printenv DATABASE_URL`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cwd, _ := cmd.Flags().GetString("cwd")
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")

		cfg, err := config.Load(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(exitLoadFailed)
		}

		override := cfg.Override
		if cmd.Flags().Changed("override") {
			override, _ = cmd.Flags().GetBool("override")
		}
		if len(envFiles) == 0 {
			envFiles = cfg.EnvFiles
		}

		if _, err := loader.Load(loader.Options{
			Dir:       cwd,
			VaultFile: cfg.VaultFile,
			EnvFiles:  envFiles,
			KeyEnvVar: cfg.KeyEnvVar,
			Override:  override,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(exitLoadFailed)
		}

		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = os.Environ()

		if err := child.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			fmt.Fprintf(os.Stderr, "envaultctl: failed to execute %s: %v\n", args[0], err)
			os.Exit(exitExecFailed)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("cwd", "", "Directory holding the env and vault files")
	runCmd.Flags().Bool("override", false, "Override existing environment variables")
	runCmd.Flags().StringSlice("env-file", nil, "Plaintext env file to load on the fallback path (repeatable)")
}
