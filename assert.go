package scu

import (
	"fmt"
	"runtime"

	"scu/internal/protocol"
	"scu/internal/runner"
)

// account records one assertion attempt at (file, line). For a fatal
// assertion it first verifies the thread-of-origin and recovery-pad
// contract; a violation there does not return.
func account(fatal bool, file string, line int) {
	if fatal {
		runner.AccountFatalAssert(file, line)
		return
	}
	runner.AccountAssert()
}

// fail appends a failure record at (file, line) and, if fatal,
// performs the non-local return to the engine's recovery landing pad.
// It never returns when fatal is true.
func fail(fatal bool, file string, line int, method, message string, values ...protocol.FailureValue) {
	runner.ReportFailure(file, line, method, message, values...)
	if fatal {
		runner.TriggerFatal()
	}
}

// caller reports the file and line of the function that called the
// exported Assert*/Fail* function currently executing — i.e. the test
// author's call site, not any of scu's own internal frames. It must
// only be called directly from an exported assertion function (skip
// depth 2: 0 is caller itself, 1 is the exported function, 2 is its
// caller).
func caller() (string, int) {
	_, file, line, _ := runtime.Caller(2)
	return file, line
}

func assertBool(fatal bool, file string, line int, cond bool, message string) {
	account(fatal, file, line)
	if cond {
		return
	}
	fail(fatal, file, line, "SCU_ASSERT", message)
}

// Assert records a boolean predicate. It fails
// with no message when cond is false.
func Assert(cond bool) {
	file, line := caller()
	assertBool(false, file, line, cond, "")
}

// AssertFatal is the fatal counterpart of Assert: on failure it
// unwinds the current test thunk via the recovery landing pad.
func AssertFatal(cond bool) {
	file, line := caller()
	assertBool(true, file, line, cond, "")
}

// AssertWithMessage is Assert with a printf-style failure message.
func AssertWithMessage(cond bool, messageFmt string, args ...interface{}) {
	file, line := caller()
	assertBool(false, file, line, cond, fmt.Sprintf(messageFmt, args...))
}

// AssertWithMessageFatal is the fatal counterpart of AssertWithMessage.
func AssertWithMessageFatal(cond bool, messageFmt string, args ...interface{}) {
	file, line := caller()
	assertBool(true, file, line, cond, fmt.Sprintf(messageFmt, args...))
}

// Fail unconditionally records a failure with the given message. It
// does not count as an assertion attempt, unlike the Assert* family.
func Fail(messageFmt string, args ...interface{}) {
	file, line := caller()
	fail(false, file, line, "SCU_FAIL", fmt.Sprintf(messageFmt, args...))
}

// FailFatal is the fatal counterpart of Fail: it unwinds the current
// test thunk immediately after recording the failure.
func FailFatal(messageFmt string, args ...interface{}) {
	file, line := caller()
	fail(true, file, line, "SCU_FAIL", fmt.Sprintf(messageFmt, args...))
}
