package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doodlesbykumbi/envault/pkg/dotenv"
	"github.com/doodlesbykumbi/envault/pkg/keyring"
)

var (
	// ErrMalformedVault indicates vault file text that does not parse
	// under the dotenv grammar.
	ErrMalformedVault = errors.New("malformed vault file")

	// ErrEnvironmentNotFound indicates a vault file with no entry for
	// the requested environment.
	ErrEnvironmentNotFound = errors.New("environment not found in vault")
)

// entryPrefix marks vault entries holding environment ciphertext.
const entryPrefix = "DOTENV_VAULT_"

// Store is an immutable mapping from vault entry name to ciphertext
// blob, parsed once from the full text of a vault file.
type Store struct {
	entries *dotenv.Mapping
}

// ParseStore parses vault file text. The file shares the dotenv
// grammar, so duplicate names follow its overwrite rule: the last
// occurrence wins. Blob contents are not validated here; that is the
// decryptor's job.
func ParseStore(text string) (*Store, error) {
	entries, err := dotenv.Parse(text, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVault, err)
	}
	return &Store{entries: entries}, nil
}

// Lookup returns the ciphertext blob for an environment, normalizing
// the identifier to its DOTENV_VAULT_<ENV> entry name.
func (s *Store) Lookup(environment string) (string, error) {
	blob, ok := s.entries.Get(keyring.VaultEntryName(environment))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEnvironmentNotFound, environment)
	}
	return blob, nil
}

// Environments lists the environment entry names present in the vault,
// lower-cased and in file order. Metadata entries without the
// DOTENV_VAULT_ prefix are skipped.
func (s *Store) Environments() []string {
	var environments []string
	for _, name := range s.entries.Names() {
		if env, ok := strings.CutPrefix(name, entryPrefix); ok && env != "" {
			environments = append(environments, strings.ToLower(env))
		}
	}
	return environments
}
