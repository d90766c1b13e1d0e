// Package pretty renders integer, pointer, and byte-buffer values into
// the bounded text form used by assertion failure reports: a decimal/
// hex pair for integers (with sign-extension annotation when the
// declared width's high bit is set), %p-style hex or NULL for
// pointers, and a 16-bytes-per-line hex+ASCII dump for buffers.
package pretty

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Integer renders value, which was declared with the given byte width
// (1, 2, 4, or 8), as "%u (0x%x)", or "%u (0x%x == %d)" when the high
// bit of that width is set — the signed interpretation obtained by
// sign-extending within the declared width. value is taken to already
// hold the raw bit pattern (e.g. a negative int8 -1 passed as
// uint64(0xff)); width controls only which bits are considered
// significant, matching the masking done by the reference
// implementation this is grounded on.
func Integer(value uint64, width int) string {
	mask := widthMask(width)
	masked := value & mask
	highBit := uint64(1) << uint(width*8-1)
	if masked&highBit != 0 {
		signed := int64(masked | ^mask)
		return fmt.Sprintf("%d (0x%x == %d)", masked, masked, signed)
	}
	return fmt.Sprintf("%d (0x%x)", masked, masked)
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width*8)) - 1
}

// Float renders value in the %f style used throughout the protocol's
// real-number fields.
func Float(value float64) string {
	return fmt.Sprintf("%f", value)
}

// Pointer renders a non-nil pointer as its hex address in %p form, or
// the literal "NULL" when ptr is nil.
func Pointer(ptr uintptr) string {
	if ptr == 0 {
		return "NULL"
	}
	return fmt.Sprintf("%#x", ptr)
}

// NotNull is the literal expected-side rendering used by
// ASSERT_PTR_NOT_NULL when the assertion fails (the expected value has
// no concrete address, only the constraint "not null").
const NotNull = "<NOT NULL>"

const bytesPerLine = 16

// maxValueLen bounds the rendered length of a byte-buffer dump.
const maxValueLen = 256

// Bytes renders buf as a hex dump with an ASCII gutter, 16 bytes per
// line: two-digit hex octets separated by spaces, the final line
// padded to the full column width, a gutter space, then the same
// bytes rendered as ASCII with non-printable bytes shown as '.'.
// Lines are newline-separated. The result is cut to at most
// maxValueLen bytes.
func Bytes(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	var lines []string
	for i := 0; i < len(buf); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(buf) {
			end = len(buf)
		}
		lines = append(lines, hexLine(buf[i:end]))
	}
	out := strings.Join(lines, "\n")
	if len(out) > maxValueLen {
		out = out[:maxValueLen]
	}
	return out
}

func hexLine(chunk []byte) string {
	hexParts := make([]string, len(chunk))
	for i, b := range chunk {
		hexParts[i] = fmt.Sprintf("%02x", b)
	}
	hexCol := strings.Join(hexParts, " ")
	// Pad the final, short line out to the width of a full 16-byte
	// line (15 separating spaces + 2 hex digits per byte) so the
	// ASCII gutter lines up across lines of differing length.
	fullWidth := bytesPerLine*2 + (bytesPerLine - 1)
	hexCol = text.Pad(hexCol, fullWidth, ' ')

	ascii := make([]byte, len(chunk))
	for i, b := range chunk {
		if b >= 32 && b < 127 {
			ascii[i] = b
		} else {
			ascii[i] = '.'
		}
	}
	return hexCol + " " + string(ascii)
}
