package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/doodlesbykumbi/envault/pkg/dotenv"
	"github.com/doodlesbykumbi/envault/pkg/env"
	"github.com/doodlesbykumbi/envault/pkg/vault"
)

const (
	// KeyEnvVar is the environment variable holding dotenv keys.
	KeyEnvVar = "DOTENV_KEY"

	// DefaultVaultFile is the conventional vault file name.
	DefaultVaultFile = ".env.vault"

	// DefaultEnvFile is the conventional plaintext file name.
	DefaultEnvFile = ".env"
)

// Options configures a Load call. The zero value loads .env.vault or
// .env from the current directory into the process environment without
// overriding existing variables.
type Options struct {
	// Dir is the directory holding the env and vault files ("" means
	// the current directory).
	Dir string

	// VaultFile overrides the vault file name.
	VaultFile string

	// EnvFiles are the plaintext files loaded, in order, when the
	// vault path is not taken. Later files win on conflict.
	EnvFiles []string

	// KeyEnvVar overrides the name of the variable holding dotenv keys.
	KeyEnvVar string

	// Override replaces variables already present in the environment.
	Override bool

	// Env is the environment read from and injected into; defaults to
	// the live process environment.
	Env env.Environment
}

// Load builds the configuration mapping and injects it into the
// environment. With a non-empty DOTENV_KEY and a readable vault file it
// resolves the vault; a missing vault file falls back to the plaintext
// path with a warning. The mapping is returned after injection.
func Load(opts Options) (*dotenv.Mapping, error) {
	environ := opts.Env
	if environ == nil {
		environ = env.System()
	}

	vars, err := build(opts, environ)
	if err != nil {
		return nil, err
	}

	if err := env.Inject(environ, vars, opts.Override); err != nil {
		return nil, err
	}
	return vars, nil
}

func build(opts Options, environ env.Environment) (*dotenv.Mapping, error) {
	keyVar := opts.KeyEnvVar
	if keyVar == "" {
		keyVar = KeyEnvVar
	}

	rawKeys, _ := environ.Lookup(keyVar)
	rawKeys = strings.TrimSpace(rawKeys)
	if rawKeys != "" {
		vaultFile := opts.VaultFile
		if vaultFile == "" {
			vaultFile = DefaultVaultFile
		}
		vaultPath := filepath.Join(opts.Dir, vaultFile)

		text, err := os.ReadFile(vaultPath)
		switch {
		case err == nil:
			log.Printf("loading env from encrypted %s", vaultFile)
			return vault.Resolve(rawKeys, string(text), environ.Lookup)
		case os.IsNotExist(err):
			log.Printf("%s is set but %s is missing, falling back to plaintext env files", keyVar, vaultFile)
		default:
			return nil, err
		}
	}

	files := opts.EnvFiles
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	merged := dotenv.NewMapping()
	resolve := func(name string) (string, bool) {
		if value, ok := merged.Get(name); ok {
			return value, true
		}
		return environ.Lookup(name)
	}

	for _, file := range files {
		text, err := os.ReadFile(filepath.Join(opts.Dir, file))
		if err != nil {
			return nil, err
		}
		vars, err := dotenv.Parse(string(text), resolve)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		merged.Merge(vars)
	}

	return merged, nil
}
