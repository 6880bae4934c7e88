package vault

import (
	"fmt"
	"strings"

	"github.com/doodlesbykumbi/envault/pkg/dotenv"
	"github.com/doodlesbykumbi/envault/pkg/keyring"
)

// CandidateFailure records why one key candidate could not produce a
// mapping. Err is ErrEnvironmentNotFound or ErrDecryptionFailed; key
// material never appears here.
type CandidateFailure struct {
	Environment string
	Err         error
}

// ResolutionError aggregates the per-candidate failures of an exhausted
// resolution attempt, in candidate order.
type ResolutionError struct {
	Failures []CandidateFailure
}

func (e *ResolutionError) Error() string {
	reasons := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		reasons[i] = fmt.Sprintf("%s: %v", f.Environment, f.Err)
	}
	return "vault resolution failed: " + strings.Join(reasons, "; ")
}

// Unwrap exposes the per-candidate errors to errors.Is.
func (e *ResolutionError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// Resolve parses rawKeys into candidates and tries each, in order,
// against the vault text: look up the candidate's environment, decrypt
// the blob, parse the plaintext. The first success wins and later
// candidates are not tried; production deployments routinely carry a
// current key and a just-rotated one side by side. A candidate whose
// environment is absent or whose decryption fails is recorded and the
// next is tried. With every candidate exhausted Resolve fails with a
// *ResolutionError.
//
// extern feeds variable expansion of the decrypted plaintext, exactly
// as for a plaintext env file.
func Resolve(rawKeys, vaultText string, extern dotenv.LookupFunc) (*dotenv.Mapping, error) {
	keys, err := keyring.ParseAll(rawKeys)
	if err != nil {
		return nil, err
	}

	store, err := ParseStore(vaultText)
	if err != nil {
		return nil, err
	}

	var failures []CandidateFailure
	for _, key := range keys {
		blob, err := store.Lookup(key.Environment())
		if err != nil {
			failures = append(failures, CandidateFailure{Environment: key.Environment(), Err: err})
			continue
		}

		plaintext, err := Decrypt(key, blob)
		if err != nil {
			// Unusable key material counts as a trial miss too; the next
			// candidate may still succeed during a rotation window.
			failures = append(failures, CandidateFailure{Environment: key.Environment(), Err: err})
			continue
		}

		return dotenv.Parse(string(plaintext), extern)
	}

	return nil, &ResolutionError{Failures: failures}
}
