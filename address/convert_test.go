package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailfmt/address"
)

func TestEncodeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", address.EncodeName(""))
	assert.Equal(t, "Bob", address.EncodeName("Bob"))
	assert.Equal(t, "Bob's Place", address.EncodeName("Bob's Place"))
	assert.Equal(t, "snake_case name", address.EncodeName("snake_case name"))

	// printable ASCII that needs quoting
	assert.Equal(t, `"Bob, Jr."`, address.EncodeName("Bob, Jr."))
	assert.Equal(t, `"Bob \"The Builder\""`, address.EncodeName(`Bob "The Builder"`))
	assert.Equal(t, `"back\\slash"`, address.EncodeName(`back\slash`))

	// non-ASCII becomes a Q encoded word, never raw UTF-8
	assert.Equal(t, "=?utf-8?q?J=C3=BCrgen?=", address.EncodeName("Jürgen"))
}

func TestConvert_Mailboxes(t *testing.T) {
	t.Parallel()

	text, seen := address.Convert(address.List{
		address.Mailbox{Address: "a@b.com"},
	})
	assert.Equal(t, "a@b.com", text)
	assert.Equal(t, []string{"a@b.com"}, seen)

	text, _ = address.Convert(address.List{
		address.Mailbox{Name: "Bob, Jr.", Address: "b@x.com"},
	})
	assert.Equal(t, `"Bob, Jr." <b@x.com>`, text)

	text, _ = address.Convert(address.List{
		address.Mailbox{Name: "Jürgen", Address: "j@x.com"},
	})
	assert.Equal(t, "=?utf-8?q?J=C3=BCrgen?= <j@x.com>", text)
}

func TestConvert_InternationalAddress(t *testing.T) {
	t.Parallel()

	// IDNA domains come out as punycode
	text, seen := address.Convert(address.List{
		address.Mailbox{Address: "a@bücher.de"},
	})
	assert.Equal(t, "a@xn--bcher-kva.de", text)
	assert.Equal(t, []string{"a@xn--bcher-kva.de"}, seen)

	// non-ASCII local parts come out as Q words
	text, _ = address.Convert(address.List{
		address.Mailbox{Address: "jü@x.com"},
	})
	assert.Equal(t, "=?utf-8?q?j=C3=BC?=@x.com", text)
}

func TestConvert_Groups(t *testing.T) {
	t.Parallel()

	text, seen := address.Convert(address.List{
		address.Group{Name: "Undisclosed recipients"},
	})
	assert.Equal(t, "Undisclosed recipients:;", text)
	assert.Empty(t, seen)

	text, seen = address.Convert(address.List{
		address.Group{
			Name: "team",
			Members: address.List{
				address.Mailbox{Address: "a@x.com"},
				address.Mailbox{Address: "b@y.com"},
			},
		},
		address.Mailbox{Address: "c@z.com"},
	})
	assert.Equal(t, "team:a@x.com, b@y.com;, c@z.com", text)
	assert.Equal(t, []string{"a@x.com", "b@y.com", "c@z.com"}, seen)
}

func TestConvert_Dedupe(t *testing.T) {
	t.Parallel()

	text, seen := address.Convert(address.List{
		address.Mailbox{Address: "a@b.com"},
		address.Mailbox{Name: "A", Address: "a@b.com"},
		address.Group{
			Name:    "g",
			Members: address.List{address.Mailbox{Address: "a@b.com"}},
		},
	})

	// rendering keeps every entry, the seen list only the first
	assert.Equal(t, "a@b.com, A <a@b.com>, g:a@b.com;", text)
	assert.Equal(t, []string{"a@b.com"}, seen)
}

func TestConvert_Empty(t *testing.T) {
	t.Parallel()

	text, seen := address.Convert(nil)
	assert.Equal(t, "", text)
	assert.Empty(t, seen)
}
