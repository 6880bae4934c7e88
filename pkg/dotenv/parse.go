package dotenv

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("malformed env file")

// ParseError reports a structurally invalid line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// LookupFunc resolves a variable name from outside the text being
// parsed, typically os.LookupEnv. It may be nil.
type LookupFunc func(name string) (string, bool)

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse parses dotenv text into a Mapping. Expansion of ${NAME} and
// $NAME consults names assigned earlier in the same text first, then
// extern; unknown names expand to the empty string. The whole text
// parses atomically: any invalid line fails the parse and no partial
// mapping is returned.
func Parse(src string, extern LookupFunc) (*Mapping, error) {
	m := NewMapping()
	resolve := func(name string) (string, bool) {
		if value, ok := m.Get(name); ok {
			return value, true
		}
		if extern != nil {
			return extern(name)
		}
		return "", false
	}

	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "export"); ok && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			line = strings.TrimSpace(rest)
		}

		name, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{Line: lineNo, Msg: "missing '=' separator"}
		}
		name = strings.TrimSpace(name)
		if !nameRegexp.MatchString(name) {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid variable name %q", name)}
		}
		raw = strings.TrimSpace(raw)

		var value string
		switch {
		case strings.HasPrefix(raw, "'"):
			body, rest, found := strings.Cut(raw[1:], "'")
			if !found {
				return nil, &ParseError{Line: lineNo, Msg: "unterminated single-quoted value"}
			}
			if err := checkTrailing(rest, lineNo); err != nil {
				return nil, err
			}
			value = body
		case strings.HasPrefix(raw, `"`):
			body, rest, last, err := scanDoubleQuoted(raw[1:], lines, i, lineNo)
			if err != nil {
				return nil, err
			}
			i = last
			if err := checkTrailing(rest, lineNo); err != nil {
				return nil, err
			}
			value = expand(body, resolve, true)
		default:
			body := raw
			if idx := strings.IndexByte(body, '#'); idx >= 0 {
				body = strings.TrimRight(body[:idx], " \t")
			}
			value = expand(body, resolve, false)
		}

		m.Set(name, value)
	}

	return m, nil
}

// checkTrailing validates the text following a closing quote: only
// whitespace or a trailing comment may appear there.
func checkTrailing(rest string, lineNo int) error {
	rest = strings.TrimSpace(rest)
	if rest != "" && !strings.HasPrefix(rest, "#") {
		return &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected text after quoted value: %q", rest)}
	}
	return nil
}

// scanDoubleQuoted consumes a double-quoted body starting just past the
// opening quote, spilling onto subsequent physical lines until the
// closing quote is found. It returns the raw body (escapes intact), the
// remainder of the closing line, and the index of that line.
func scanDoubleQuoted(first string, lines []string, i, startLine int) (body, rest string, last int, err error) {
	var b strings.Builder
	cur := first
	for {
		for j := 0; j < len(cur); j++ {
			switch cur[j] {
			case '\\':
				j++ // skip escaped character
			case '"':
				b.WriteString(cur[:j])
				return b.String(), cur[j+1:], i, nil
			}
		}
		b.WriteString(cur)
		b.WriteByte('\n')
		i++
		if i >= len(lines) {
			return "", "", 0, &ParseError{Line: startLine, Msg: "unterminated double-quoted value"}
		}
		cur = strings.TrimSuffix(lines[i], "\r")
	}
}

// expand processes escape sequences and ${NAME} / $NAME references.
// Double-quoted values honor the full escape set; unquoted values only
// treat \$ and \\ specially, keeping other backslashes literal.
func expand(s string, resolve func(string) (string, bool), quoted bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			if quoted {
				switch next {
				case 'n':
					b.WriteByte('\n')
					i++
					continue
				case 'r':
					b.WriteByte('\r')
					i++
					continue
				case 't':
					b.WriteByte('\t')
					i++
					continue
				case '\\', '"', '$':
					b.WriteByte(next)
					i++
					continue
				}
			} else if next == '$' || next == '\\' {
				b.WriteByte(next)
				i++
				continue
			}
			b.WriteByte(c)
			continue
		}
		if c == '$' && i+1 < len(s) {
			name, width := scanVarRef(s[i+1:])
			if width > 0 {
				if value, ok := resolve(name); ok {
					b.WriteString(value)
				}
				i += width
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// scanVarRef reads a variable reference immediately after a dollar sign
// and returns the referenced name and the number of bytes consumed. A
// zero width means the dollar is literal.
func scanVarRef(s string) (string, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0
		}
		name := s[1:end]
		if !nameRegexp.MatchString(name) {
			return "", 0
		}
		return name, end + 1
	}

	n := 0
	for n < len(s) && (s[n] == '_' ||
		(s[n] >= 'a' && s[n] <= 'z') ||
		(s[n] >= 'A' && s[n] <= 'Z') ||
		(n > 0 && s[n] >= '0' && s[n] <= '9')) {
		n++
	}
	if n == 0 {
		return "", 0
	}
	return s[:n], n
}
