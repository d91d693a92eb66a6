package field

import (
	"fmt"
	"strings"
)

// DefaultContinuationLength is the segment length used by Continue when
// the caller passes a non-positive maxLength. Matches the conservative
// limit mail generators commonly use for parameter segments.
const DefaultContinuationLength = 50

// Param is one key/value pair produced by Continue. Values are already
// escape-safe and must be written without surrounding quotes; quoting a
// continuation segment corrupts filename handling in some receivers.
type Param struct {
	Name  string
	Value string
}

// Continue encodes a header parameter value per RFC 2231. A value made
// entirely of attribute characters that fits in maxLength comes back as
// the single original pair. One that is safe but too long is split into
// unencoded segments keyed name*0, name*1, and so on. Anything else uses
// the extended syntax: UTF-8 percent-encoded segments keyed name*0*,
// name*1*, with the charset prefix "utf-8''" on the first segment and
// %XX triples never split across segments.
func Continue(name, value string, maxLength int) []Param {
	if maxLength <= 0 {
		maxLength = DefaultContinuationLength
	}

	if isAttrString(value) {
		if len(value) <= maxLength {
			return []Param{{name, value}}
		}
		return continuePlain(name, value, maxLength)
	}

	return continueExtended(name, value, maxLength)
}

func continuePlain(name, value string, maxLength int) []Param {
	ps := make([]Param, 0, len(value)/maxLength+1)
	for i := 0; len(value) > 0; i++ {
		n := maxLength
		if n > len(value) {
			n = len(value)
		}
		ps = append(ps, Param{
			Name:  fmt.Sprintf("%s*%d", name, i),
			Value: value[:n],
		})
		value = value[n:]
	}
	return ps
}

func continueExtended(name, value string, maxLength int) []Param {
	var (
		ps  []Param
		seg strings.Builder
		idx int
	)

	flush := func() {
		ps = append(ps, Param{
			Name:  fmt.Sprintf("%s*%d*", name, idx),
			Value: seg.String(),
		})
		idx++
		seg.Reset()
	}

	seg.WriteString("utf-8''")
	for i := 0; i < len(value); i++ {
		b := value[i]

		width := 1
		if !isAttrChar(b) {
			width = 3
		}
		if seg.Len() > 0 && seg.Len()+width > maxLength {
			flush()
		}

		if width == 1 {
			seg.WriteByte(b)
		} else {
			fmt.Fprintf(&seg, "%%%02X", b)
		}
	}
	if seg.Len() > 0 {
		flush()
	}

	return ps
}

// isAttrChar reports whether b is an RFC 2231 attribute character, safe
// to emit in an unquoted, unencoded parameter segment.
func isAttrChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z',
		b >= 'A' && b <= 'Z',
		b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '&', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isAttrString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAttrChar(s[i]) {
			return false
		}
	}
	return true
}
