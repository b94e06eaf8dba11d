package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Hello   World  ", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"What's New in 2024?", "what-s-new-in-2024"},
		{"---", ""},
		{"", ""},
		{"C. G. Jung & the Red Book", "c-g-jung-the-red-book"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Derive(tc.in), "Derive(%q)", tc.in)
	}
}

func TestOrDeriveKeepsExisting(t *testing.T) {
	assert.Equal(t, "my-custom-slug", OrDerive("my-custom-slug", "A Different Title"))
	assert.Equal(t, "a-different-title", OrDerive("", "A Different Title"))
}
