package scu

import (
	"bytes"

	"scu/internal/pretty"
	"scu/internal/protocol"
)

// AssertMemEqual compares the first n bytes of actual and expected
// with memcmp semantics. On failure both operands are rendered as a
// 16-bytes-per-line hex+ASCII dump for easy visual comparison.
func AssertMemEqual(actual, expected []byte, n int) {
	file, line := caller()
	account(false, file, line)
	if memEqual(actual, expected, n) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_MEM_EQUAL", "", memValues(actual, expected, n)...)
}

// AssertMemEqualFatal is the fatal counterpart of AssertMemEqual.
func AssertMemEqualFatal(actual, expected []byte, n int) {
	file, line := caller()
	account(true, file, line)
	if memEqual(actual, expected, n) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_MEM_EQUAL", "", memValues(actual, expected, n)...)
}

// AssertMemNotEqual is the inequality counterpart of AssertMemEqual.
func AssertMemNotEqual(actual, expected []byte, n int) {
	file, line := caller()
	account(false, file, line)
	if !memEqual(actual, expected, n) {
		return
	}
	fail(false, file, line, "SCU_ASSERT_MEM_NOT_EQUAL", "", memValues(actual, expected, n)...)
}

// AssertMemNotEqualFatal is the fatal counterpart of AssertMemNotEqual.
func AssertMemNotEqualFatal(actual, expected []byte, n int) {
	file, line := caller()
	account(true, file, line)
	if !memEqual(actual, expected, n) {
		return
	}
	fail(true, file, line, "SCU_ASSERT_MEM_NOT_EQUAL", "", memValues(actual, expected, n)...)
}

func memEqual(a, b []byte, n int) bool {
	return bytes.Equal(memPrefix(a, n), memPrefix(b, n))
}

func memPrefix(buf []byte, n int) []byte {
	if n < 0 || n > len(buf) {
		return buf
	}
	return buf[:n]
}

func memValues(actual, expected []byte, n int) []protocol.FailureValue {
	return []protocol.FailureValue{
		{Name: "actual", Value: pretty.Bytes(memPrefix(actual, n))},
		{Name: "expected", Value: pretty.Bytes(memPrefix(expected, n))},
	}
}
