package scu

import (
	"fmt"

	"scu/internal/pretty"
	"scu/internal/protocol"
)

// AssertIntEqual compares two integers' raw bit patterns, extended to
// 64 bits, while preserving width (in bytes: 1, 2, 4, or 8) to drive
// sign-aware pretty-printing on failure. actual and expected should be
// passed as the raw bit pattern of the declared-width value, e.g.
// uint64(uint8(x)) for an 8-bit value.
func AssertIntEqual(actual, expected uint64, width int) {
	file, line := caller()
	account(false, file, line)
	if maskedEqual(actual, expected, width) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_INT_EQUAL", "", intValues(actual, expected, width)...)
}

// AssertIntEqualFatal is the fatal counterpart of AssertIntEqual.
func AssertIntEqualFatal(actual, expected uint64, width int) {
	file, line := caller()
	account(true, file, line)
	if maskedEqual(actual, expected, width) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_INT_EQUAL", "", intValues(actual, expected, width)...)
}

// AssertIntNotEqual is the width-aware inequality counterpart.
func AssertIntNotEqual(actual, expected uint64, width int) {
	file, line := caller()
	account(false, file, line)
	if !maskedEqual(actual, expected, width) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_INT_NOT_EQUAL", "", intValues(actual, expected, width)...)
}

// AssertIntNotEqualFatal is the fatal counterpart of AssertIntNotEqual.
func AssertIntNotEqualFatal(actual, expected uint64, width int) {
	file, line := caller()
	account(true, file, line)
	if !maskedEqual(actual, expected, width) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_INT_NOT_EQUAL", "", intValues(actual, expected, width)...)
}

func maskedEqual(a, b uint64, width int) bool {
	mask := widthMaskFor(width)
	return a&mask == b&mask
}

// widthMaskFor mirrors internal/pretty's own masking so equality
// comparison and pretty-printing agree on which bits are significant.
func widthMaskFor(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width*8)) - 1
}

func intValues(actual, expected uint64, width int) []protocol.FailureValue {
	return []protocol.FailureValue{
		{Name: decimalName(actual, width), Value: pretty.Integer(actual, width)},
		{Name: decimalName(expected, width), Value: pretty.Integer(expected, width)},
	}
}

// decimalName renders the plain decimal form of a width-masked value,
// matching the common case where the call-site literal equals the
// value itself (see AssertEqual's doc comment for why scu cannot
// recover the actual call-site expression text).
func decimalName(value uint64, width int) string {
	mask := widthMaskFor(width)
	masked := value & mask
	highBit := uint64(1) << uint(width*8-1)
	if width < 8 && masked&highBit != 0 {
		return fmt.Sprintf("%d", int64(masked|^mask))
	}
	return fmt.Sprintf("%d", masked)
}
