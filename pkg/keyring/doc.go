// Package keyring parses DOTENV_KEY credential strings into key
// descriptors.
//
// A dotenv key is a URI of the form
//
//	dotenv://:key_1234@dotenv.org/vault/.env.vault?environment=production
//
// where the URL password carries the key material and the environment
// query parameter names the deployment environment to decrypt. Several
// keys may be supplied comma-separated; ParseAll preserves their order
// so that a current key can be tried before a just-rotated one.
//
// Key material is secret. The Key type never exposes it through String
// or error messages; only the environment name appears in diagnostics.
package keyring
