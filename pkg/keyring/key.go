package keyring

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedKey indicates a dotenv key that does not follow the
// dotenv:// URI convention or carries unusable key material.
var ErrMalformedKey = errors.New("invalid dotenv key")

// Scheme is the required URI scheme of a dotenv key.
const Scheme = "dotenv"

// keyHexLen is the number of trailing hex characters of the key
// material that encode the symmetric key.
const keyHexLen = 64

// Key is an immutable descriptor parsed from a single dotenv key
// string: opaque key material plus the environment it decrypts.
type Key struct {
	material    string
	environment string
}

// Parse validates a raw dotenv key string and constructs a Key.
// The raw string is a secret and is never included in error text.
func Parse(raw string) (*Key, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid URI", ErrMalformedKey)
	}
	if u.Scheme != Scheme {
		return nil, fmt.Errorf("%w: scheme must be %s://", ErrMalformedKey, Scheme)
	}

	material, ok := u.User.Password()
	if !ok || material == "" {
		return nil, fmt.Errorf("%w: missing key part", ErrMalformedKey)
	}

	environment := u.Query().Get("environment")
	if environment == "" {
		return nil, fmt.Errorf("%w: missing environment part", ErrMalformedKey)
	}

	return &Key{material: material, environment: environment}, nil
}

// Environment returns the deployment environment this key decrypts.
func (k *Key) Environment() string {
	return k.environment
}

// EnvironmentKey returns the vault entry name for this key's
// environment, DOTENV_VAULT_<ENV> with the environment upper-cased and
// non-alphanumeric runs collapsed to a single underscore.
func (k *Key) EnvironmentKey() string {
	return VaultEntryName(k.environment)
}

// KeyBytes decodes the key material into the 32-byte symmetric key.
// The material must be at least 64 characters; its last 64 characters
// are the hex encoding of the key.
func (k *Key) KeyBytes() ([]byte, error) {
	if len(k.material) < keyHexLen {
		return nil, fmt.Errorf("%w: key part too short", ErrMalformedKey)
	}
	decoded, err := hex.DecodeString(k.material[len(k.material)-keyHexLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: key part is not valid hex", ErrMalformedKey)
	}
	return decoded, nil
}

// String identifies the key without revealing its material.
func (k *Key) String() string {
	return fmt.Sprintf("dotenv key (environment=%s)", k.environment)
}

// VaultEntryName normalizes an environment identifier into its vault
// entry name: DOTENV_VAULT_<ENV>, upper-cased, with every run of
// non-alphanumeric characters collapsed to a single underscore.
func VaultEntryName(environment string) string {
	var b strings.Builder
	b.WriteString("DOTENV_VAULT_")
	underscore := false
	for _, r := range strings.ToUpper(environment) {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			underscore = false
		default:
			if !underscore {
				b.WriteByte('_')
				underscore = true
			}
		}
	}
	return b.String()
}
