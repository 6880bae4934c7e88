// Package main implements envaultctl, the CLI for loading encrypted
// .env.vault files and plaintext .env files.
//
// # Quick Start
//
//	# run a program with the resolved environment
//	export DOTENV_KEY='dotenv://:key_1234@dotenv.org/vault/.env.vault?environment=production'
//	envaultctl run -- ./my-server --port 8080
//
//	# list the environments packed into a vault file
//	envaultctl environments
//
//	# keep validating the vault as it is rebuilt
//	envaultctl watch
//
// # Environment Variables
//
//   - DOTENV_KEY: one or more comma-separated dotenv keys
//   - ENVAULT_VAULT_FILE / ENVAULT_ENV_FILES / ENVAULT_OVERRIDE /
//     ENVAULT_KEY_ENV_VAR: overrides for .envault.yml settings
package main
