package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerNegativeOneAcrossWidths(t *testing.T) {
	cases := []struct {
		width int
		want  string
	}{
		{1, "255 (0xff == -1)"},
		{2, "65535 (0xffff == -1)"},
		{4, "4294967295 (0xffffffff == -1)"},
		{8, "18446744073709551615 (0xffffffffffffffff == -1)"},
	}
	for _, c := range cases {
		got := Integer(^uint64(0), c.width)
		assert.Equal(t, c.want, got, "width %d", c.width)
	}
}

func TestIntegerPositiveHasNoSignAnnotation(t *testing.T) {
	assert.Equal(t, "1 (0x1)", Integer(1, 4))
	assert.Equal(t, "255 (0xff)", Integer(255, 1))
}

func TestPointerNull(t *testing.T) {
	assert.Equal(t, "NULL", Pointer(0))
}

func TestPointerNonNullStartsWith0x(t *testing.T) {
	got := Pointer(0xdeadbeef)
	assert.True(t, len(got) > 2 && got[:2] == "0x")
}

func TestBytesSingleLineNoTruncation(t *testing.T) {
	buf := []byte("hello")
	got := Bytes(buf)
	assert.Contains(t, got, "68 65 6c 6c 6f")
	assert.Contains(t, got, "hello")
}

func TestBytesTwoLinesWithPadding(t *testing.T) {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = byte(i)
	}
	got := Bytes(buf)
	lines := splitLines(got)
	fullWidth := bytesPerLine*2 + (bytesPerLine - 1)
	if assert.Len(t, lines, 2) {
		assert.True(t, len(lines[0]) >= fullWidth+1+bytesPerLine, "first line should hold a full 16-byte hex column plus gutter and ascii")
		assert.True(t, len(lines[1]) >= fullWidth+1, "second line's hex column should be padded out to the full width before its gutter")
		assert.Equal(t, "10 11 12 13"+strings.Repeat(" ", fullWidth-len("10 11 12 13")), lines[1][:fullWidth], "padded hex column present")
		assert.Equal(t, byte(' '), lines[1][fullWidth-1], "trailing padding on the short line is a space")
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
