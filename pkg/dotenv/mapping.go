package dotenv

import "strings"

// Mapping is an ordered set of NAME=value pairs produced by Parse.
// Insertion order is preserved because later values may reference
// earlier ones during expansion. Reassigning a name overwrites its
// value but keeps its original position.
type Mapping struct {
	names  []string
	values map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: map[string]string{}}
}

// Set assigns value to name, appending name to the order on first use.
func (m *Mapping) Set(name, value string) {
	if _, seen := m.values[name]; !seen {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value for name and whether name is present.
func (m *Mapping) Get(name string) (string, bool) {
	value, ok := m.values[name]
	return value, ok
}

// Names returns the variable names in insertion order.
func (m *Mapping) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Len returns the number of variables.
func (m *Mapping) Len() int {
	return len(m.names)
}

// Merge applies every entry of other onto m in other's order. Names
// already present in m keep their position and take other's value.
func (m *Mapping) Merge(other *Mapping) {
	for _, name := range other.names {
		m.Set(name, other.values[name])
	}
}

// escaper rewrites values so that Marshal output survives a reparse:
// backslash, double quote and dollar are escaped, and control characters
// use their escape sequences.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Marshal serializes the mapping as dotenv text. Every value is emitted
// double-quoted with escapes, so parsing the output yields an identical
// mapping (the round trip is exact on the mapping, not on source text).
func (m *Mapping) Marshal() string {
	var b strings.Builder
	for _, name := range m.names {
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escaper.Replace(m.values[name]))
		b.WriteString("\"\n")
	}
	return b.String()
}
