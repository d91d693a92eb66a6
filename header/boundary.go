package header

import (
	"fmt"
	"math/rand"
	"strings"
)

// boundaryPrefix marks boundaries generated by this library. The "?="
// in the middle guarantees the string can never collide with the output
// of an encoded-word generator.
const boundaryPrefix = "----sinikael-?=_"

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// Boundary builds the multipart boundary for one node of a message
// tree. The node id is whatever per-node identifier the assembler
// hands out (integers and strings format identically) and the seed is a
// per-message token, typically from RandomBoundarySeed. The result is
// deterministic; boundaries within a message are distinct exactly when
// node ids are, which is the assembler's job to guarantee.
func Boundary(nodeID any, seed string) string {
	return fmt.Sprintf("%s%v-%s", boundaryPrefix, nodeID, seed)
}

// RandomBoundarySeed generates a random per-message boundary seed that
// is probably unique in most circumstances.
func RandomBoundarySeed() string {
	return randomToken(30)
}

// SafeBoundarySeed generates a random boundary seed that is guaranteed
// not to occur in the given corpus of data. Use this when the parts of
// the message are already known:
//
//	seed := header.SafeBoundarySeed(strings.Join(parts, ""))
//
// using this is likely to be total overkill, but in case you're paranoid.
func SafeBoundarySeed(contents string) string {
	for {
		seed := RandomBoundarySeed()
		if !strings.Contains(contents, seed) {
			return seed
		}
	}
}

// GenerateMessageID produces a random Message-Id value, brackets
// included, for the given originating hostname. An empty hostname falls
// back to "localhost".
func GenerateMessageID(hostname string) string {
	if hostname == "" {
		hostname = "localhost"
	}

	groups := []int{4, 4, 4, 12}
	parts := make([]string, len(groups))
	for i, n := range groups {
		parts[i] = randomToken(n)
	}

	return fmt.Sprintf("<%s@%s>", strings.Join(parts, "-"), hostname)
}

func randomToken(n int) string {
	s := make([]rune, n)
	for i := range s {
		s[i] = letters[rand.Intn(len(letters))]
	}
	return string(s)
}
