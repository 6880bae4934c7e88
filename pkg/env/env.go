package env

import (
	"os"

	"github.com/doodlesbykumbi/envault/pkg/dotenv"
)

// Environment is a mutable name/value store, usually the process
// environment.
type Environment interface {
	// Lookup returns the value for name and whether name is present.
	Lookup(name string) (string, bool)

	// Set assigns value to name.
	Set(name, value string) error
}

type system struct{}

func (system) Lookup(name string) (string, bool) { return os.LookupEnv(name) }
func (system) Set(name, value string) error      { return os.Setenv(name, value) }

// System returns the live process environment.
func System() Environment {
	return system{}
}

// Map is an in-memory Environment for tests and dry runs.
type Map map[string]string

func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

func (m Map) Set(name, value string) error {
	m[name] = value
	return nil
}

// Inject applies vars onto target in insertion order. With override set
// every entry is written unconditionally; otherwise only names absent
// from target are written, so repeating the call changes nothing.
func Inject(target Environment, vars *dotenv.Mapping, override bool) error {
	for _, name := range vars.Names() {
		if !override {
			if _, exists := target.Lookup(name); exists {
				continue
			}
		}
		value, _ := vars.Get(name)
		if err := target.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
