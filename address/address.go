// Package address models RFC 5322 address lists for output. An address
// list is a sequence of entries, each of which is either a single mailbox
// or a named group of further entries. The model is deliberately a sum
// type: an entry is exactly one of the two, never a struct with
// overlapping optional fields.
//
// The package converts between three representations: loosely structured
// caller input (free text, Mailbox/Group values, or nested slices of
// either), the canonical List model, and 7-bit-safe header text. Parsing
// of the free-text grammar itself is delegated to
// github.com/zostay/go-addr.
package address

// Address is one entry of an address list, either a Mailbox or a Group.
// The interface is sealed; no other implementations are possible.
type Address interface {
	// sealed limits implementations to this package.
	sealed()
}

// Mailbox is a single recipient. Name is the optional display name shown
// before the angle-addr; Address is the addr-spec (local@domain).
type Mailbox struct {
	Name    string
	Address string
}

// Group is an RFC 5322 named group. Members may be empty, which is how
// "undisclosed-recipients:;" style headers are written.
type Group struct {
	Name    string
	Members List
}

// List is an ordered address list. Order is significant and is preserved
// through parsing and conversion.
type List []Address

func (Mailbox) sealed() {}
func (Group) sealed()   {}
