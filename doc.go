// Package mailfmt turns structured address and header data into RFC
// 5322/2045/2047/2231-compliant header text for outgoing email. It is the
// text-formatting half of a message builder: a MIME assembler owns the
// message tree, body encoding, and delivery, and calls into this library
// whenever a header line or multipart boundary needs to be rendered.
//
// The code is split according to what part of a header it deals with. The
// address package models an address list the way RFC 5322 does, as a
// sequence of mailboxes and named groups, and can both normalize
// caller-supplied values into that model and render the model back out as
// canonical, 7-bit-safe header text. The header package knows which headers
// carry addresses, which carry message identifiers, and which are plain
// unstructured text, and encodes a value accordingly. The header/field
// package holds the low-level codecs the rest of the library delegates to:
// RFC 2047 encoded words, RFC 2231 parameter continuations, and header
// folding. The header/param package renders parameterized header bodies
// such as Content-Type and Content-Disposition.
//
// Everything here is a pure computation over its arguments. No state is
// kept between calls, so every function is safe to call from multiple
// goroutines at once.
//
// Strict address grammar parsing is not reimplemented here. Free text is
// handed to github.com/zostay/go-addr, and whatever that strict parser
// rejects is surfaced to the caller unchanged. This library's job begins
// after parsing: making sure that whatever goes out on the wire is encoded
// so that real mail clients will read it back the way it was meant.
package mailfmt
