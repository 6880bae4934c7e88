// Package dotenv parses text in the dotenv (KEY=value) grammar into an
// ordered mapping of variable names to values.
//
// The grammar follows the conventions shared by the dotenv family of
// tools: blank lines and # comments are skipped, an optional "export"
// prefix is stripped, values may be unquoted, single-quoted (literal) or
// double-quoted (escape sequences and embedded newlines), and
// double-quoted and unquoted values undergo ${NAME} / $NAME expansion
// against earlier assignments and an external lookup.
//
// # Basic Usage
//
//	vars, err := dotenv.Parse(text, os.LookupEnv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range vars.Names() {
//	    value, _ := vars.Get(name)
//	    fmt.Printf("%s=%s\n", name, value)
//	}
//
// Parse errors identify the offending 1-based line number and wrap
// ErrMalformed:
//
//	if errors.Is(err, dotenv.ErrMalformed) {
//	    var perr *dotenv.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println("bad line:", perr.Line)
//	    }
//	}
package dotenv
