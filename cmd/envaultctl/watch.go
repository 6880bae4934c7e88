package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/envault/pkg/config"
	"github.com/doodlesbykumbi/envault/pkg/env"
	"github.com/doodlesbykumbi/envault/pkg/loader"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault file and re-validate it on change",
	Long: `Watch the vault file (or the plaintext env file on the fallback path)
and re-run the loader whenever it changes, reporting whether the file
still resolves with the current DOTENV_KEY.

Validation runs against a scratch environment; the live process
environment is never mutated.

Example:
  envaultctl watch
  envaultctl watch --cwd /srv/app`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, _ := cmd.Flags().GetString("cwd")

		if err := watchVault(cwd); err != nil {
			fmt.Fprintf(os.Stderr, "envaultctl: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("cwd", "", "Directory holding the env and vault files")
}

// scratch overlays writes on the live environment without mutating it,
// so a watch validation behaves exactly like a real load.
type scratch struct {
	writes env.Map
}

func (s scratch) Lookup(name string) (string, bool) {
	if value, ok := s.writes.Lookup(name); ok {
		return value, true
	}
	return os.LookupEnv(name)
}

func (s scratch) Set(name, value string) error {
	return s.writes.Set(name, value)
}

func watchVault(cwd string) error {
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	validate := func() {
		vars, err := loader.Load(loader.Options{
			Dir:       cwd,
			VaultFile: cfg.VaultFile,
			EnvFiles:  cfg.EnvFiles,
			KeyEnvVar: cfg.KeyEnvVar,
			Override:  true,
			Env:       scratch{writes: env.Map{}},
		})
		stamp := time.Now().Format(time.RFC3339)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] load failed: %v\n", stamp, err)
			return
		}
		fmt.Fprintf(os.Stderr, "[%s] ok: %d variables resolve\n", stamp, vars.Len())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the files: build tools replace
	// the vault file wholesale, which drops a per-file watch.
	dir := cwd
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watched := map[string]bool{cfg.VaultFile: true}
	for _, f := range cfg.EnvFiles {
		watched[f] = true
	}

	fmt.Fprintf(os.Stderr, "Watching %s for changes\n", dir)
	validate()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Base(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				validate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			return nil
		}
	}
}
