// Package vault reads .env.vault files and decrypts the ciphertext for
// a deployment environment.
//
// A vault file uses the plain dotenv grammar; each entry maps a
// DOTENV_VAULT_<ENVIRONMENT> name to an opaque ciphertext blob. Two
// blob packings are understood:
//
//   - versioned: v1.<hex iv>.<base64 ciphertext||tag>
//   - legacy: base64(iv || ciphertext || tag), the packing emitted by
//     the original dotenv-vault build tooling
//
// Decryption is AES-256-GCM with a 12-byte IV and 16-byte tag. All
// decryption failures (bad encodings, wrong IV length, tag mismatch,
// non-UTF-8 plaintext) surface uniformly as ErrDecryptionFailed so that
// an attacker probing keys learns nothing from the failure mode.
//
// Resolve ties it together: it parses the DOTENV_KEY candidates, tries
// each against the store in order, and returns the first successfully
// decrypted and parsed mapping:
//
//	vars, err := vault.Resolve(os.Getenv("DOTENV_KEY"), vaultText, os.LookupEnv)
//	if err != nil {
//	    var rerr *vault.ResolutionError
//	    if errors.As(err, &rerr) {
//	        // per-candidate failure detail, no key material
//	    }
//	}
package vault
