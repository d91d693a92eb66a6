package header

import (
	"regexp"
	"strings"
	"time"

	"github.com/zostay/go-mailfmt/address"
	"github.com/zostay/go-mailfmt/header/field"
)

// category groups header names by the encoding semantics their values
// share. The set is closed; adding a new specially-handled header means
// adding it to categories and, if needed, a new handler.
type category int

const (
	catDefault category = iota
	catAddress
	catIdentifier
	catReferences
	catSubject
	catDate
)

var categories = map[string]category{
	From:    catAddress,
	Sender:  catAddress,
	To:      catAddress,
	Cc:      catAddress,
	Bcc:     catAddress,
	ReplyTo: catAddress,

	MessageID: catIdentifier,
	InReplyTo: catIdentifier,
	ContentID: catIdentifier,

	References: catReferences,
	Subject:    catSubject,
	Date:       catDate,
}

var handlers = map[category]func([]string) (string, error){
	catDefault:    encodeDefaultValue,
	catAddress:    encodeAddressValue,
	catIdentifier: encodeIdentifierValue,
	catReferences: encodeReferencesValue,
	catSubject:    encodeSubjectValue,
	catDate:       encodeDateValue,
}

// EncodeValue encodes a raw header value for the named header. The key
// may be given in any casing; it is normalized before dispatch. Multiple
// values are accepted for multi-valued headers such as References and To.
//
// Address headers (From, Sender, To, Cc, Bcc, Reply-To) round-trip
// through the address model: parsed by the strict grammar parser, then
// re-rendered canonically. Identifier headers (Message-Id, In-Reply-To,
// Content-Id) are wrapped in angle brackets if not already wrapped.
// References is re-tokenized with each reference bracket-wrapped. Subject
// becomes a single unsplit encoded word when it carries non-ASCII text.
// Date values are re-rendered in RFC 5322 form. Every other header uses
// the splitting encoded-words strategy. Unknown headers never error; the
// only error source is the address grammar parser, whose failures are
// returned unchanged.
func EncodeValue(key string, values ...string) (string, error) {
	return handlers[categories[Normalize(key)]](values)
}

func encodeAddressValue(values []string) (string, error) {
	ins := make([]any, len(values))
	for i, v := range values {
		ins[i] = v
	}

	list, err := address.Parse(ins...)
	if err != nil {
		return "", err
	}

	text, _ := address.Convert(list)
	return text, nil
}

func encodeIdentifierValue(values []string) (string, error) {
	v := strings.TrimSpace(collapseNewlines(strings.Join(values, " ")))
	return bracket(v), nil
}

// idToken matches one bracketed message id, whitespace and all.
var (
	idToken    = regexp.MustCompile(`<[^<>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

func encodeReferencesValue(values []string) (string, error) {
	toks := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(collapseNewlines(v))

		// an id that arrived folded may carry whitespace inside its
		// brackets; repair it before tokenizing
		v = idToken.ReplaceAllStringFunc(v, func(id string) string {
			return whitespace.ReplaceAllString(id, "")
		})

		for _, tok := range strings.Fields(v) {
			toks = append(toks, bracket(tok))
		}
	}
	return strings.TrimSpace(strings.Join(toks, " ")), nil
}

func encodeSubjectValue(values []string) (string, error) {
	v := collapseNewlines(strings.Join(values, " "))
	return field.BEncodeSingle(v), nil
}

func encodeDateValue(values []string) (string, error) {
	v := strings.TrimSpace(collapseNewlines(strings.Join(values, " ")))

	t, err := ParseTime(v)
	if err != nil {
		// not a date after all, encode it like any other text
		return encodeDefaultValue(values)
	}

	return t.Format(time.RFC1123Z), nil
}

func encodeDefaultValue(values []string) (string, error) {
	v := collapseNewlines(strings.Join(values, " "))
	return field.BEncodeWords(v), nil
}

// bracket ensures a message id is wrapped in angle brackets, without
// double-wrapping one that already is.
func bracket(v string) string {
	if !strings.HasPrefix(v, "<") {
		v = "<" + v
	}
	if !strings.HasSuffix(v, ">") {
		v += ">"
	}
	return v
}
