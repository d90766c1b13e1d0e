package scu

import (
	"scu/internal/escape"
	"scu/internal/protocol"
	scustrings "scu/pkg/strings"
)

// valueDisplayMaxLen bounds the escaped value text embedded in a
// failure record to the same limit scu.go applies to a registered
// test's description.
const valueDisplayMaxLen = scustrings.DefaultValueDisplayMaxLen

// AssertStringEqual compares two strings for equality. On failure
// both operands are rendered through the escaper so control
// characters and quotes are visible.
func AssertStringEqual(actual, expected string) {
	file, line := caller()
	account(false, file, line)
	if actual == expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_STRING_EQUAL", "", stringValues(actual, expected)...)
}

// AssertStringEqualFatal is the fatal counterpart of AssertStringEqual.
func AssertStringEqualFatal(actual, expected string) {
	file, line := caller()
	account(true, file, line)
	if actual == expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_STRING_EQUAL", "", stringValues(actual, expected)...)
}

// AssertStringNotEqual is the inequality counterpart of
// AssertStringEqual.
func AssertStringNotEqual(actual, expected string) {
	file, line := caller()
	account(false, file, line)
	if actual != expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_STRING_NOT_EQUAL", "", stringValues(actual, expected)...)
}

// AssertStringNotEqualFatal is the fatal counterpart of
// AssertStringNotEqual.
func AssertStringNotEqualFatal(actual, expected string) {
	file, line := caller()
	account(true, file, line)
	if actual != expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_STRING_NOT_EQUAL", "", stringValues(actual, expected)...)
}

// AssertNStringEqual compares the first n bytes of actual and
// expected. Shorter-than-n operands compare only up to their own
// length, matching strncmp's behavior once a NUL terminator is
// reached.
func AssertNStringEqual(actual, expected string, n int) {
	file, line := caller()
	account(false, file, line)
	if nstringEqual(actual, expected, n) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_NSTRING_EQUAL", "", stringValues(actual, expected)...)
}

// AssertNStringEqualFatal is the fatal counterpart of
// AssertNStringEqual.
func AssertNStringEqualFatal(actual, expected string, n int) {
	file, line := caller()
	account(true, file, line)
	if nstringEqual(actual, expected, n) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_NSTRING_EQUAL", "", stringValues(actual, expected)...)
}

// AssertNStringNotEqual is the inequality counterpart of
// AssertNStringEqual.
func AssertNStringNotEqual(actual, expected string, n int) {
	file, line := caller()
	account(false, file, line)
	if !nstringEqual(actual, expected, n) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_NSTRING_NOT_EQUAL", "", stringValues(actual, expected)...)
}

// AssertNStringNotEqualFatal is the fatal counterpart of
// AssertNStringNotEqual.
func AssertNStringNotEqualFatal(actual, expected string, n int) {
	file, line := caller()
	account(true, file, line)
	if !nstringEqual(actual, expected, n) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_NSTRING_NOT_EQUAL", "", stringValues(actual, expected)...)
}

func nstringEqual(a, b string, n int) bool {
	return prefix(a, n) == prefix(b, n)
}

func prefix(s string, n int) string {
	if n < 0 || n > len(s) {
		return s
	}
	return s[:n]
}

func stringValues(actual, expected string) []protocol.FailureValue {
	return []protocol.FailureValue{
		{Name: escape.Display(actual, valueDisplayMaxLen), Value: escape.Display(actual, valueDisplayMaxLen)},
		{Name: escape.Display(expected, valueDisplayMaxLen), Value: escape.Display(expected, valueDisplayMaxLen)},
	}
}
