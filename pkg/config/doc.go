// Package config loads envaultctl settings from an optional .envault.yml
// file with ENVAULT_* environment variables taking precedence.
//
// The config file only supplies CLI defaults; the loader library never
// reads it. All fields are optional:
//
//	vault_file: .env.vault
//	env_files:
//	  - .env
//	  - .env.local
//	override: false
//	key_env_var: DOTENV_KEY
//
// Environment overrides: ENVAULT_VAULT_FILE, ENVAULT_ENV_FILES
// (comma-separated), ENVAULT_OVERRIDE (boolean), ENVAULT_KEY_ENV_VAR.
package config
