// Package field implements the low-level codecs header values are built
// from: RFC 2047 encoded words, RFC 2231 parameter continuations, and
// header folding. The rest of the library delegates here so every policy
// about how bytes become 7-bit-safe text lives in one place.
package field

import (
	"encoding/base64"
	"io"
	"mime"
	"strings"
)

// CharsetDecoder may be set to let Decode handle charsets beyond what the
// standard library understands. Import
// github.com/zostay/go-mailfmt/header/encoding to install a decoder
// backed by the full IANA registry.
var CharsetDecoder func(charset string, b []byte) (string, error)

// IsPlainText reports whether s can travel in a header as-is: no control
// characters other than TAB, LF, and CR, and nothing above 0x7F.
func IsPlainText(s string) bool {
	for _, c := range s {
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c < 0x20 || c > 0x7f {
			return false
		}
	}
	return true
}

// QEncode transforms a single token into an RFC 2047 Q encoded-word.
// Mostly-ASCII input stays human readable; input that needs no encoding
// at all is returned unchanged.
func QEncode(s string) string {
	return mime.QEncoding.Encode("utf-8", s)
}

// BEncodeWords transforms a header field body using b-type (Base64)
// encoded words. Long input is split into multiple adjacent encoded
// words as RFC 2047 length limits require; input that needs no encoding
// is returned unchanged.
func BEncodeWords(s string) string {
	return mime.BEncoding.Encode("utf-8", s)
}

// BEncodeSingle encodes the whole value as exactly one b-type
// encoded-word, never split across word boundaries. This is the Subject
// policy: some clients reassemble split subjects badly, so the value
// stays atomic. Values that need no encoding pass through, unless they
// contain "=?" and could be misread as an encoded word themselves.
func BEncodeSingle(s string) string {
	if IsPlainText(s) && !strings.Contains(s, "=?") {
		return s
	}
	return "=?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(s)) + "?="
}

// Decode transforms a header field body by finding MIME encoded words
// and decoding them into native unicode. Bodies with no encoded words
// are returned as-is.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{}
	if CharsetDecoder != nil {
		dec.CharsetReader = charsetReader
	}

	return dec.DecodeHeader(body)
}

// charsetReader adapts the CharsetDecoder hook to the shape
// mime.WordDecoder wants.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	b, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	s, err := CharsetDecoder(charset, b)
	if err != nil {
		return nil, err
	}

	return strings.NewReader(s), nil
}
