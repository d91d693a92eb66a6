package field

import "strings"

// DefaultFoldWidth is the preferred maximum line length used by Fold
// when the caller passes a non-positive width. RFC 5322 recommends
// keeping lines within 78 characters; 76 leaves room for the CRLF.
const DefaultFoldWidth = 76

// Fold breaks a single header line at existing spaces so no line
// exceeds the given width, inserting CRLF before the space chosen as
// the break point. The space itself becomes the continuation line's
// leading whitespace, so unfolding by deleting CRLFs restores the
// original string exactly. A run with no spaces is left longer than
// width rather than broken mid-word.
func Fold(s string, width int) string {
	if width <= 0 {
		width = DefaultFoldWidth
	}
	if len(s) <= width {
		return s
	}

	var b strings.Builder
	for len(s) > width {
		span := s
		if len(span) > width+1 {
			span = span[:width+1]
		}

		cut := strings.LastIndexByte(span, ' ')
		if cut < 1 {
			// no space within reach, take the next one available
			next := strings.IndexByte(s[1:], ' ')
			if next < 0 {
				break
			}
			cut = next + 1
		}

		b.WriteString(s[:cut])
		b.WriteString("\r\n")
		s = s[cut:]
	}
	b.WriteString(s)

	return b.String()
}
