package scu

import (
	"fmt"

	"scu/internal/protocol"
)

// AssertEqual compares two comparable values with ==. Unlike a C
// macro, which could stringify the call-site expression text via the
// preprocessor, Go has no call-site token access; the failure's
// operand names are the values' own default string form, matching the
// common case where the literal written at the call site is the value
// itself (e.g. a literal comparison like AssertIntEqual(1, 2, 8)
// reports name "1").
func AssertEqual[T comparable](actual, expected T) {
	file, line := caller()
	account(false, file, line)
	if actual == expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_EQUAL", "", equalValues(actual, expected)...)
}

// AssertEqualFatal is the fatal counterpart of AssertEqual.
func AssertEqualFatal[T comparable](actual, expected T) {
	file, line := caller()
	account(true, file, line)
	if actual == expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_EQUAL", "", equalValues(actual, expected)...)
}

// AssertNotEqual is the != counterpart of AssertEqual.
func AssertNotEqual[T comparable](actual, expected T) {
	file, line := caller()
	account(false, file, line)
	if actual != expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_NOT_EQUAL", "", equalValues(actual, expected)...)
}

// AssertNotEqualFatal is the fatal counterpart of AssertNotEqual.
func AssertNotEqualFatal[T comparable](actual, expected T) {
	file, line := caller()
	account(true, file, line)
	if actual != expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_NOT_EQUAL", "", equalValues(actual, expected)...)
}

func equalValues[T comparable](actual, expected T) []protocol.FailureValue {
	return []protocol.FailureValue{
		{Name: fmt.Sprintf("%v", actual), Value: fmt.Sprintf("%v", actual)},
		{Name: fmt.Sprintf("%v", expected), Value: fmt.Sprintf("%v", expected)},
	}
}
