// Package header encodes header field names and values for outgoing
// email. Field names are canonicalized into the usual dash-separated
// title case. Field values are encoded according to what the header
// means: address headers round-trip through the address model, identifier
// headers get their angle brackets, References is repaired and
// re-tokenized, Subject and unstructured headers become RFC 2047 encoded
// words when they carry non-ASCII text. The package also generates
// multipart boundaries and message ids for the assembler that owns the
// message tree.
package header

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// These are standard headers defined in RFC 5322 and RFC 2045, in the
// canonical form produced by Normalize.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-Disposition"
	ContentID               = "Content-Id"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	ContentType             = "Content-Type"
	Date                    = "Date"
	From                    = "From"
	InReplyTo               = "In-Reply-To"
	MessageID               = "Message-Id"
	MIMEVersion             = "MIME-Version"
	References              = "References"
	ReplyTo                 = "Reply-To"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// Even more custom date formats, built from those seen in the wild that
// the usual parsers have trouble with.
const (
	// UnixDateWithEarlyYear is a weird one, eh?
	UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"
)

var newlines = regexp.MustCompile(`[\r\n]+`)

// Normalize canonicalizes a header field name: newlines become spaces,
// surrounding whitespace is trimmed, and the result is title-cased per
// dash-separated segment, so "content-type" becomes "Content-Type" and
// "x-foo-bar" becomes "X-Foo-Bar". A leading "mime" segment uppercases
// fully, giving "MIME-Version" rather than "Mime-Version".
func Normalize(name string) string {
	name = strings.TrimSpace(newlines.ReplaceAllString(name, " "))
	name = strings.ToLower(name)

	parts := strings.Split(name, "-")
	for i, p := range parts {
		if i == 0 && p == "mime" {
			parts[i] = "MIME"
			continue
		}
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}

	return strings.Join(parts, "-")
}

// ParseTime parses a date header body. This will attempt to parse the
// date using the format specified by RFC 5322 first and fall back to
// parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// collapseNewlines replaces every run of CR and LF characters with a
// single space. Header values are single logical lines; any line breaks
// in caller input are folding artifacts.
func collapseNewlines(s string) string {
	return newlines.ReplaceAllString(s, " ")
}
