package scu

import (
	"scu/internal/pretty"
	"scu/internal/protocol"
)

// AssertPtrNull asserts that ptr (typically uintptr(unsafe.Pointer(p)))
// is zero.
func AssertPtrNull(ptr uintptr) {
	file, line := caller()
	account(false, file, line)
	if ptr == 0 {
		return
	}
	fail(false, file, line, "SCU_ASSERT_PTR_NULL", "", ptrValue(ptr), protocol.FailureValue{Name: "NULL", Value: "NULL"})
}

// AssertPtrNullFatal is the fatal counterpart of AssertPtrNull.
func AssertPtrNullFatal(ptr uintptr) {
	file, line := caller()
	account(true, file, line)
	if ptr == 0 {
		return
	}
	fail(true, file, line, "SCU_ASSERT_PTR_NULL", "", ptrValue(ptr), protocol.FailureValue{Name: "NULL", Value: "NULL"})
}

// AssertPtrNotNull asserts that ptr is non-zero. On failure the
// expected side renders as pretty.NotNull, since there is no concrete
// expected address.
func AssertPtrNotNull(ptr uintptr) {
	file, line := caller()
	account(false, file, line)
	if ptr != 0 {
		return
	}
	fail(false, file, line, "SCU_ASSERT_PTR_NOT_NULL", "", ptrValue(ptr), protocol.FailureValue{Name: pretty.NotNull, Value: pretty.NotNull})
}

// AssertPtrNotNullFatal is the fatal counterpart of AssertPtrNotNull.
func AssertPtrNotNullFatal(ptr uintptr) {
	file, line := caller()
	account(true, file, line)
	if ptr != 0 {
		return
	}
	fail(true, file, line, "SCU_ASSERT_PTR_NOT_NULL", "", ptrValue(ptr), protocol.FailureValue{Name: pretty.NotNull, Value: pretty.NotNull})
}

// AssertPtrEqual compares two pointer-sized addresses.
func AssertPtrEqual(actual, expected uintptr) {
	file, line := caller()
	account(false, file, line)
	if actual == expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_PTR_EQUAL", "", ptrValue(actual), ptrValue(expected))
}

// AssertPtrEqualFatal is the fatal counterpart of AssertPtrEqual.
func AssertPtrEqualFatal(actual, expected uintptr) {
	file, line := caller()
	account(true, file, line)
	if actual == expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_PTR_EQUAL", "", ptrValue(actual), ptrValue(expected))
}

// AssertPtrNotEqual is the inequality counterpart of AssertPtrEqual.
func AssertPtrNotEqual(actual, expected uintptr) {
	file, line := caller()
	account(false, file, line)
	if actual != expected {
		return
	}
	fail(false, file, line, "SCU_ASSERT_PTR_NOT_EQUAL", "", ptrValue(actual), ptrValue(expected))
}

// AssertPtrNotEqualFatal is the fatal counterpart of AssertPtrNotEqual.
func AssertPtrNotEqualFatal(actual, expected uintptr) {
	file, line := caller()
	account(true, file, line)
	if actual != expected {
		return
	}
	fail(true, file, line, "SCU_ASSERT_PTR_NOT_EQUAL", "", ptrValue(actual), ptrValue(expected))
}

func ptrValue(ptr uintptr) protocol.FailureValue {
	rendered := pretty.Pointer(ptr)
	return protocol.FailureValue{Name: rendered, Value: rendered}
}
