package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/envault/pkg/loader"
)

// ConfigFileName is the per-project configuration file.
const ConfigFileName = ".envault.yml"

// Config holds envaultctl settings.
type Config struct {
	// VaultFile is the vault file name relative to the working directory.
	VaultFile string `yaml:"vault_file"`

	// EnvFiles are the plaintext files loaded on the fallback path.
	EnvFiles []string `yaml:"env_files"`

	// Override replaces existing environment variables on injection.
	Override bool `yaml:"override"`

	// KeyEnvVar names the variable holding dotenv keys.
	KeyEnvVar string `yaml:"key_env_var"`
}

// Default returns the conventional settings.
func Default() *Config {
	return &Config{
		VaultFile: loader.DefaultVaultFile,
		EnvFiles:  []string{loader.DefaultEnvFile},
		Override:  false,
		KeyEnvVar: loader.KeyEnvVar,
	}
}

// Load reads dir/.envault.yml if it exists and applies ENVAULT_*
// environment overrides on top. A missing file yields the defaults;
// environment variables always win over file values.
func Load(dir string) (*Config, error) {
	config := Default()

	path := filepath.Join(dir, ConfigFileName)
	if data, err := os.ReadFile(path); err == nil {
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		config.applyFile(&file)
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyFile(file *Config) {
	if file.VaultFile != "" {
		c.VaultFile = file.VaultFile
	}
	if len(file.EnvFiles) > 0 {
		c.EnvFiles = file.EnvFiles
	}
	if file.Override {
		c.Override = true
	}
	if file.KeyEnvVar != "" {
		c.KeyEnvVar = file.KeyEnvVar
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ENVAULT_VAULT_FILE"); v != "" {
		c.VaultFile = v
	}
	if v := os.Getenv("ENVAULT_ENV_FILES"); v != "" {
		var files []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		c.EnvFiles = files
	}
	if v := os.Getenv("ENVAULT_OVERRIDE"); v != "" {
		override, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ENVAULT_OVERRIDE value %q: %w", v, err)
		}
		c.Override = override
	}
	if v := os.Getenv("ENVAULT_KEY_ENV_VAR"); v != "" {
		c.KeyEnvVar = v
	}
	return nil
}
