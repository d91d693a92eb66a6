package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailfmt/address"
)

func TestParse_Text(t *testing.T) {
	t.Parallel()

	list, err := address.Parse("Bob <b@x.com>, c@y.com")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, address.Mailbox{Name: "Bob", Address: "b@x.com"}, list[0])
	assert.Equal(t, address.Mailbox{Address: "c@y.com"}, list[1])
}

func TestParse_Nested(t *testing.T) {
	t.Parallel()

	list, err := address.Parse(
		[]any{"a@x.com", []string{"b@y.com"}},
		address.Mailbox{Name: "C", Address: "c@z.com"},
	)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, address.Mailbox{Address: "a@x.com"}, list[0])
	assert.Equal(t, address.Mailbox{Address: "b@y.com"}, list[1])
	assert.Equal(t, address.Mailbox{Name: "C", Address: "c@z.com"}, list[2])
}

func TestParse_Structured(t *testing.T) {
	t.Parallel()

	// structured input is canonicalized before grammar parsing, so the
	// parser only ever sees ASCII-safe text
	list, err := address.Parse(address.Mailbox{Name: "Jürgen", Address: "j@x.com"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	mb, isMailbox := list[0].(address.Mailbox)
	require.True(t, isMailbox)
	assert.Equal(t, "=?utf-8?q?J=C3=BCrgen?=", mb.Name)
	assert.Equal(t, "j@x.com", mb.Address)
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	const in = "Bob <b@x.com>, team:a@x.com, b@y.com;, c@z.com"

	list, err := address.Parse(in)
	require.NoError(t, err)
	require.Len(t, list, 3)

	g, isGroup := list[1].(address.Group)
	require.True(t, isGroup)
	assert.Equal(t, "team", g.Name)
	assert.Len(t, g.Members, 2)

	text, seen := address.Convert(list)
	assert.Equal(t, in, text)
	assert.Equal(t,
		[]string{"b@x.com", "a@x.com", "b@y.com", "c@z.com"}, seen)
}

func TestParse_Blank(t *testing.T) {
	t.Parallel()

	list, err := address.Parse("", "   ", nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParse_GrammarError(t *testing.T) {
	t.Parallel()

	list, err := address.Parse("<")
	assert.Error(t, err)
	assert.Nil(t, list)

	// a grammar error anywhere aborts the whole call
	list, err = address.Parse("good@x.com", "<")
	assert.Error(t, err)
	assert.Nil(t, list)
}
