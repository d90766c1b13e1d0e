package escape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayEscapesControlAndQuoteCharacters(t *testing.T) {
	input := "\n\t\"\\\x01x"
	want := `"\n\t\"\\\x01x"`
	assert.Equal(t, want, Display(input, 256))
}

func TestDisplayTruncatesPreservingClosingQuote(t *testing.T) {
	input := strings.Repeat("a", 300)
	got := Display(input, 16)
	assert.LessOrEqual(t, len(got), 16)
	assert.Equal(t, byte('"'), got[len(got)-1])
	assert.Equal(t, byte('"'), got[0])
}

func TestJSONEscapesBackslashQuoteNewline(t *testing.T) {
	assert.Equal(t, `a\\b\"c\nd`, JSON("a\\b\"c\nd"))
}
