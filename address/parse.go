package address

import (
	"fmt"
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// Parse normalizes whatever shape of address input the caller has into a
// flat List. Each input may be free text, a Mailbox or Group (by value or
// pointer), a List, or a slice of any of these; nesting one level of
// slices is common when grouped recipients arrive as
// [][]string{groupA, groupB}. All results are flattened in input order.
//
// Structured values are canonicalized through Convert before parsing, so
// the strict grammar parser only ever sees ASCII-safe text. Free text is
// handed to github.com/zostay/go-addr; a parse error from it aborts the
// whole call and is returned unchanged. Blank strings contribute nothing.
// Values of any other type are coerced with fmt.Sprint and parsed as
// text.
func Parse(inputs ...any) (List, error) {
	var out List
	for _, in := range inputs {
		parsed, err := parseOne(in)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed...)
	}
	return out, nil
}

func parseOne(in any) (List, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case string:
		return parseText(v)
	case Mailbox:
		return parseEntry(v)
	case *Mailbox:
		return parseEntry(*v)
	case Group:
		return parseEntry(v)
	case *Group:
		return parseEntry(*v)
	case List:
		return Parse(anySlice(v)...)
	case []Address:
		return Parse(anySlice(v)...)
	case []Mailbox:
		return Parse(anySlice(v)...)
	case []Group:
		return Parse(anySlice(v)...)
	case []string:
		return Parse(anySlice(v)...)
	case []any:
		return Parse(v...)
	default:
		return parseText(fmt.Sprint(v))
	}
}

// parseEntry round-trips a structured entry through the converter. The
// Q encoding and IDNA conversion happen here, before grammar parsing.
func parseEntry(a Address) (List, error) {
	text, _ := Convert(List{a})
	return parseText(text)
}

func parseText(text string) (List, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	al, err := addr.ParseEmailAddressList(text)
	if err != nil {
		return nil, err
	}

	return fromAddrList(al), nil
}

// fromAddrList maps the grammar parser's model onto ours. Anything the
// parser returns that is neither a mailbox nor a group degrades to a
// bare Mailbox holding its addr-spec.
func fromAddrList(al addr.AddressList) List {
	out := make(List, 0, len(al))
	for _, a := range al {
		switch v := a.(type) {
		case *addr.Mailbox:
			out = append(out, Mailbox{
				Name:    v.DisplayName(),
				Address: v.Address(),
			})
		case *addr.Group:
			out = append(out, Group{
				Name:    v.DisplayName(),
				Members: fromAddrList(v.MailboxList().AddressList()),
			})
		default:
			out = append(out, Mailbox{Address: a.Address()})
		}
	}
	return out
}

func anySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
