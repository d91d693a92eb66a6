package address

import (
	"mime"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// plainName matches display names that may be written into a header
// without quoting or encoding.
var plainName = regexp.MustCompile(`^[\w ']*$`)

// EncodeName encodes a display name so it is safe to place before an
// angle-addr. Names made of word characters, spaces, and apostrophes pass
// through unchanged. Other printable ASCII names are quoted with
// backslash escapes for embedded quotes and backslashes. Anything else
// becomes an RFC 2047 Q encoded-word.
func EncodeName(name string) string {
	switch {
	case plainName.MatchString(name):
		return name
	case isPrintableASCII(name):
		return quoteName(name)
	default:
		return mime.QEncoding.Encode("utf-8", name)
	}
}

// Convert renders an address list as canonical header text, entries in
// order, joined by ", ". Mailboxes render as "addr-spec" or
// "Name <addr-spec>" with the local part passed through Q encoding and
// the domain through IDNA, so the output never carries raw non-ASCII
// octets. Groups render as "Name:members;".
//
// The second return value collects every distinct encoded addr-spec in
// first-seen order, including those inside groups. Callers building an
// envelope recipient list (RCPT TO) can use it directly. Duplicates are
// detected by exact string match on the encoded form.
func Convert(list List) (string, []string) {
	seen := make([]string, 0, len(list))
	text := convert(list, &seen)
	return text, seen
}

// convert walks one level of the list, threading the shared dedupe
// accumulator through group recursion.
func convert(list List, seen *[]string) string {
	parts := make([]string, 0, len(list))
	for _, a := range list {
		switch e := a.(type) {
		case Mailbox:
			parts = append(parts, convertMailbox(e, seen))
		case *Mailbox:
			parts = append(parts, convertMailbox(*e, seen))
		case Group:
			parts = append(parts, convertGroup(e, seen))
		case *Group:
			parts = append(parts, convertGroup(*e, seen))
		}
	}
	return strings.Join(parts, ", ")
}

func convertMailbox(mb Mailbox, seen *[]string) string {
	enc := encodeAddress(mb.Address)

	if enc != "" && !contains(*seen, enc) {
		*seen = append(*seen, enc)
	}

	if mb.Name == "" {
		return enc
	}
	return EncodeName(mb.Name) + " <" + enc + ">"
}

func convertGroup(g Group, seen *[]string) string {
	members := ""
	if len(g.Members) > 0 {
		members = strings.TrimSpace(convert(g.Members, seen))
	}
	return EncodeName(g.Name) + ":" + members + ";"
}

// encodeAddress rewrites an addr-spec so only 7-bit-safe octets remain:
// the local part through Q encoding (plain ASCII passes unchanged) and
// the domain through IDNA ToASCII. The split happens at the last "@" so
// quoted local parts containing "@" stay intact. A value with no "@" is
// treated as a bare local part. If IDNA conversion fails, the domain is
// kept as given.
func encodeAddress(a string) string {
	a = strings.TrimSpace(a)
	if a == "" {
		return ""
	}

	at := strings.LastIndex(a, "@")
	if at < 0 {
		return mime.QEncoding.Encode("utf-8", a)
	}

	local := mime.QEncoding.Encode("utf-8", a[:at])
	domain := a[at+1:]
	if ascii, err := idna.ToASCII(domain); err == nil && ascii != "" {
		domain = ascii
	}

	return local + "@" + domain
}

func isPrintableASCII(s string) bool {
	for _, c := range s {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// quoteName wraps a name in double quotes, escaping embedded quotes and
// backslashes. Everything else, commas included, stays as-is.
func quoteName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	b.WriteByte('"')
	return b.String()
}

func contains(ss []string, s string) bool {
	for _, c := range ss {
		if c == s {
			return true
		}
	}
	return false
}
