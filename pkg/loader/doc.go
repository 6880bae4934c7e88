// Package loader decides between the encrypted vault path and the
// plaintext dotenv path, builds the final mapping and injects it into
// an environment.
//
// With DOTENV_KEY set and a .env.vault file present, the vault path
// runs; otherwise the configured plaintext files load in order, later
// files winning on conflict. Injection only happens once the whole
// mapping has been built, so a parse failure never leaves the
// environment partially updated.
//
//	vars, err := loader.Load(loader.Options{Override: false})
//	if err != nil {
//	    log.Fatal(err)
//	}
package loader
