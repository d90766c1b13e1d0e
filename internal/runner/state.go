package runner

import (
	"unicode/utf8"

	"scu/internal/protocol"
)

// MaxFailures bounds the number of failure records kept per test;
// attempts beyond that are dropped silently but still flip success to
// false.
const MaxFailures = 1024

// MaxFailureMessageLength bounds a failure record's message, in bytes.
const MaxFailureMessageLength = 2048

// fatalAssertion is the panic value used to unwind a test thunk back
// to its recovery landing pad (runOneTest). It carries no data: the
// failure itself was already recorded by ReportFailure before the
// panic.
type fatalAssertion struct{}

// testState is the process-global, per-test mutable accounting state.
// It is unavoidably global because it must be reachable from deeply
// nested user code without parameter threading. It is reset at the
// start of every test and is never accessed concurrently: test
// execution is strictly single-threaded, so no mutex guards it.
type testState struct {
	success         bool
	asserts         int
	failures        []protocol.Failure
	recoveryValid   bool
	allowedThreadID int
}

var current testState

// violationHandler is invoked when a fatal assertion is attempted
// outside its permitted window (no active recovery pad) or from a
// thread other than the one that entered the thunk. It is set once by
// the Engine before any test runs.
var violationHandler func(file string, line int, message string)

// SetThreadViolationHandler installs the callback used to report a
// thread-of-origin or recovery-pad contract violation. The callback
// is expected to emit a testcase_error event and terminate the
// process; AccountFatalAssert does not return when it fires one.
func SetThreadViolationHandler(h func(file string, line int, message string)) {
	violationHandler = h
}

// ResetTestState reinitializes the per-test accounting state. Called
// once at the start of every test, before BeforeEach runs.
func ResetTestState() {
	current = testState{success: true}
}

// EnterThunk marks the recovery pad valid and records the identity of
// the calling thread, opening the window during which fatal
// assertions are permitted.
func EnterThunk() {
	current.recoveryValid = true
	current.allowedThreadID = currentThreadID()
}

// ExitThunk closes the recovery window. Any fatal assertion attempted
// after this point (e.g. from a goroutine the thunk spawned and that
// outlives it) is a contract violation.
func ExitThunk() {
	current.recoveryValid = false
	current.allowedThreadID = 0
}

// AccountAssert records one non-fatal assertion attempt. Fail's
// unconditional-failure form does not call this.
func AccountAssert() {
	current.asserts++
}

// AccountFatalAssert records one fatal assertion attempt after
// verifying the thread-of-origin contract. On violation it invokes
// the installed violation handler, which does not return: a mismatch
// is an unrecoverable programming error, not a test failure.
func AccountFatalAssert(file string, line int) {
	if !current.recoveryValid {
		reportViolation(file, line, "fatal assertion used outside a running test")
		return
	}
	if currentThreadID() != current.allowedThreadID {
		reportViolation(file, line, "fatal assertion used from a thread other than the one that entered the test")
		return
	}
	current.asserts++
}

func reportViolation(file string, line int, message string) {
	if violationHandler != nil {
		violationHandler(file, line, message)
	}
}

// ReportFailure appends one failure record to the current test's
// ring, unless MaxFailures has already been reached, and flips the
// success flag. Overflow is silent: the failure is dropped but
// success is still cleared. A message longer than
// MaxFailureMessageLength bytes is cut at the last rune boundary
// within that limit.
func ReportFailure(file string, line int, assertMethod, message string, values ...protocol.FailureValue) {
	current.success = false
	if len(current.failures) >= MaxFailures {
		return
	}
	if len(message) > MaxFailureMessageLength {
		n := MaxFailureMessageLength
		for n > 0 && !utf8.RuneStart(message[n]) {
			n--
		}
		message = message[:n]
	}
	current.failures = append(current.failures, protocol.Failure{
		File:         file,
		Line:         line,
		AssertMethod: assertMethod,
		Message:      message,
		Values:       values,
	})
}

// TriggerFatal performs the non-local return to the engine's recovery
// landing pad: panic/recover stands in for setjmp/longjmp here.
func TriggerFatal() {
	panic(fatalAssertion{})
}

// Success reports whether the current test has recorded zero
// failures so far.
func Success() bool { return current.success }

// AssertCount reports the number of assertion attempts accounted so
// far in the current test.
func AssertCount() int { return current.asserts }

// FailureList returns the ordered failures recorded so far in the
// current test. Callers must not mutate the returned slice.
func FailureList() []protocol.Failure { return current.failures }
