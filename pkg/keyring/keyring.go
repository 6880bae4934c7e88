package keyring

import (
	"errors"
	"strings"
)

// ErrNoValidKeys indicates that a non-empty DOTENV_KEY value contained
// no parseable dotenv keys. An absent value is the caller's concern.
var ErrNoValidKeys = errors.New("no valid dotenv keys")

// ParseAll splits raw on commas, trims each item, drops empty items and
// parses the remainder. Items that fail to parse are skipped; the
// surviving keys keep their input order so that candidates are tried in
// the priority the caller listed them. If nothing parses, ParseAll
// fails with ErrNoValidKeys.
func ParseAll(raw string) ([]*Key, error) {
	var keys []*Key
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, err := Parse(item)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, ErrNoValidKeys
	}
	return keys, nil
}
