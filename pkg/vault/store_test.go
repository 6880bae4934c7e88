package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vaultText = `#/-------------------.env.vault---------------------/
#/         cloud-agnostic vaulting standard          /
#/---------------------------------------------------/

# development
DOTENV_VAULT_DEVELOPMENT="blob-development"

# production
DOTENV_VAULT_PRODUCTION="blob-production"
DOTENV_VAULT_CI_NIGHTLY="blob-ci"
`

func TestParseStoreLookup(t *testing.T) {
	store, err := ParseStore(vaultText)
	require.NoError(t, err)

	tests := []struct {
		environment string
		expected    string
	}{
		{"development", "blob-development"},
		{"production", "blob-production"},
		{"PRODUCTION", "blob-production"},
		{"ci-nightly", "blob-ci"},
		{"ci nightly", "blob-ci"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			blob, err := store.Lookup(tt.environment)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, blob)
		})
	}
}

func TestParseStoreEnvironmentNotFound(t *testing.T) {
	store, err := ParseStore(vaultText)
	require.NoError(t, err)

	_, err = store.Lookup("staging")
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	assert.Contains(t, err.Error(), "staging")
}

func TestParseStoreDuplicateLastWins(t *testing.T) {
	store, err := ParseStore("DOTENV_VAULT_PRODUCTION=\"old\"\nDOTENV_VAULT_PRODUCTION=\"new\"")
	require.NoError(t, err)

	blob, err := store.Lookup("production")
	require.NoError(t, err)
	assert.Equal(t, "new", blob)
}

func TestParseStoreMalformed(t *testing.T) {
	store, err := ParseStore("DOTENV_VAULT_PRODUCTION=\"ok\"\nJUNK LINE")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrMalformedVault)
}

func TestStoreEnvironments(t *testing.T) {
	text := vaultText + "\nDOTENV_VAULT=\"vlt_metadata\"\n"
	store, err := ParseStore(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"development", "production", "ci_nightly"}, store.Environments())
}
