// Package env models the process environment as an explicit capability
// and applies parsed dotenv mappings onto it.
//
// The Environment interface keeps environment access substitutable:
// System() wraps the real process environment, while Map is an
// in-memory implementation for tests and dry runs.
//
//	target := env.System()
//	if err := env.Inject(target, vars, false); err != nil {
//	    log.Fatal(err)
//	}
//
// Inject is not inherently thread-safe: the process environment is
// global state, and callers mutating it concurrently from elsewhere
// must synchronize externally.
package env
