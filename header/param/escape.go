package param

import (
	"strings"
	"unicode"
)

// EscapeArgument makes a parameter value safe to place after "name=" in
// a header line. Values containing whitespace, quotes, apostrophes,
// backslashes, semicolons, slashes, or equals signs, and values starting
// with a dash, are wrapped in double quotes with embedded quotes and
// backslashes escaped. Everything else is returned unchanged.
func EscapeArgument(v string) string {
	if !needsQuoting(v) {
		return v
	}

	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(v string) bool {
	if strings.HasPrefix(v, "-") {
		return true
	}
	for _, c := range v {
		if unicode.IsSpace(c) {
			return true
		}
		switch c {
		case '\'', '"', '\\', ';', '/', '=':
			return true
		}
	}
	return false
}
