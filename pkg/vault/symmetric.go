package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/doodlesbykumbi/envault/pkg/keyring"
)

const (
	ivSize  = 12
	tagSize = 16
	keySize = 32

	// blobVersion tags the versioned ciphertext packing.
	blobVersion = "v1"

	// blobDelimiter separates the version tag, hex IV and base64
	// payload of a versioned blob.
	blobDelimiter = "."
)

var (
	// ErrDecryptionFailed covers every way a blob can fail to decrypt:
	// bad encodings, wrong IV length, tag mismatch, non-text plaintext.
	// The causes are deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedVersion indicates a versioned blob whose version
	// tag this implementation does not recognize.
	ErrUnsupportedVersion = errors.New("unsupported ciphertext version")
)

// Decrypt recovers the plaintext of a ciphertext blob using the given
// key descriptor. The plaintext of a correctly keyed decryption is
// always UTF-8 dotenv text, so anything else is a decryption failure.
func Decrypt(key *keyring.Key, blob string) ([]byte, error) {
	keyBytes, err := key.KeyBytes()
	if err != nil {
		return nil, err
	}

	iv, data, err := unpack(blob)
	if err != nil {
		return nil, err
	}

	aead, err := newAEAD(keyBytes)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, iv, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: check your DOTENV_KEY", ErrDecryptionFailed)
	}
	if !utf8.Valid(plaintext) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptionFailed)
	}

	return plaintext, nil
}

// Encrypt seals plaintext under a 32-byte key into a versioned blob.
// It is the counterpart of Decrypt used by build tooling and tests; the
// loader itself never encrypts.
func Encrypt(key, plaintext []byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)
	return strings.Join([]string{
		blobVersion,
		hex.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(sealed),
	}, blobDelimiter), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", keyring.ErrMalformedKey, keySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// unpack splits a blob into IV and ciphertext-with-tag. A blob
// containing the delimiter is the versioned packing; anything else is
// the legacy packing, base64(iv || ciphertext || tag).
func unpack(blob string) (iv, data []byte, err error) {
	if !strings.Contains(blob, blobDelimiter) {
		raw, err := base64.StdEncoding.DecodeString(blob)
		if err != nil || len(raw) < ivSize+tagSize {
			return nil, nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
		}
		return raw[:ivSize], raw[ivSize:], nil
	}

	parts := strings.Split(blob, blobDelimiter)
	if len(parts) != 3 {
		return nil, nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}
	if parts[0] != blobVersion {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, parts[0])
	}

	iv, hexErr := hex.DecodeString(parts[1])
	data, b64Err := base64.StdEncoding.DecodeString(parts[2])
	if hexErr != nil || b64Err != nil || len(iv) != ivSize || len(data) < tagSize {
		return nil, nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	return iv, data, nil
}
