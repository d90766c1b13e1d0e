package protocol

import "io"

// FailureValue is one named, optionally valued operand of a failed
// assertion (the LHS or RHS expression text plus its pretty-printed
// value).
type FailureValue struct {
	Name  string
	Value string // empty means omit the "value" field
}

// Failure is one recorded assertion failure, as it appears in a
// testcase_end event's failures array.
type Failure struct {
	File         string
	Line         int
	Message      string
	AssertMethod string
	Values       []FailureValue // 0, 1, or 2 entries: LHS, optionally RHS
}

// WriteModuleList emits the module_list event.
func WriteModuleList(w io.Writer, name string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("module_list")
	e.separator()
	e.key("name")
	e.str(name)
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteTestCaseList emits one testcase_list event.
func WriteTestCaseList(w io.Writer, line int, name, description string, tags []string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("testcase_list")
	e.separator()
	e.key("line")
	e.integer(line)
	e.separator()
	e.key("name")
	e.str(name)
	e.separator()
	e.key("description")
	e.str(description)
	e.separator()
	e.key("tags")
	e.arrayStart()
	for i, tag := range tags {
		if i > 0 {
			e.separator()
		}
		e.str(tag)
	}
	e.arrayEnd()
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteModuleStart emits the module_start event.
func WriteModuleStart(w io.Writer, name string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("module_start")
	e.separator()
	e.key("name")
	e.str(name)
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteModuleEnd emits the module_end event.
func WriteModuleEnd(w io.Writer) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("module_end")
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteSetupStart emits the setup_start event.
func WriteSetupStart(w io.Writer, output string) error {
	return writePhaseStart(w, "setup_start", output)
}

// WriteSetupEnd emits the setup_end event.
func WriteSetupEnd(w io.Writer) error {
	return writePhaseEnd(w, "setup_end")
}

// WriteTeardownStart emits the teardown_start event.
func WriteTeardownStart(w io.Writer, output string) error {
	return writePhaseStart(w, "teardown_start", output)
}

// WriteTeardownEnd emits the teardown_end event.
func WriteTeardownEnd(w io.Writer) error {
	return writePhaseEnd(w, "teardown_end")
}

func writePhaseStart(w io.Writer, event, output string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str(event)
	e.separator()
	e.key("output")
	e.str(output)
	e.objectEnd()
	e.newline()
	return e.err
}

func writePhaseEnd(w io.Writer, event string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str(event)
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteTestCaseStart emits the testcase_start event.
func WriteTestCaseStart(w io.Writer, index int, name, output string) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("testcase_start")
	e.separator()
	e.key("index")
	e.integer(index)
	e.separator()
	e.key("name")
	e.str(name)
	e.separator()
	e.key("output")
	e.str(output)
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteTestCaseEnd emits the testcase_end event, including its
// ordered failures array.
func WriteTestCaseEnd(w io.Writer, index int, success bool, asserts int, duration, cpuTime float64, failures []Failure) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("testcase_end")
	e.separator()
	e.key("index")
	e.integer(index)
	e.separator()
	e.key("success")
	e.boolean(success)
	e.separator()
	e.key("asserts")
	e.integer(asserts)
	e.separator()
	e.key("duration")
	e.real(duration)
	e.separator()
	e.key("cpu_time")
	e.real(cpuTime)
	e.separator()
	writeFailures(e, failures)
	e.objectEnd()
	e.newline()
	return e.err
}

// WriteTestCaseError emits the testcase_error event used for a
// recovery-pad or thread-of-origin contract violation.
func WriteTestCaseError(w io.Writer, message, file string, line int) error {
	e := newEmitter(w)
	e.objectStart()
	e.key("event")
	e.str("testcase_error")
	e.separator()
	e.key("message")
	e.str(message)
	e.separator()
	e.key("file")
	e.str(file)
	e.separator()
	e.key("line")
	e.integer(line)
	e.separator()
	e.key("crash")
	e.boolean(true)
	e.objectEnd()
	e.newline()
	return e.err
}

func writeFailures(e *emitter, failures []Failure) {
	e.key("failures")
	e.arrayStart()
	for i, f := range failures {
		if i > 0 {
			e.separator()
		}
		writeFailure(e, f)
	}
	e.arrayEnd()
}

func writeFailure(e *emitter, f Failure) {
	e.objectStart()
	e.key("file")
	e.str(f.File)
	e.separator()
	e.key("line")
	e.integer(f.Line)
	e.separator()
	e.key("message")
	e.str(f.Message)
	e.separator()
	e.key("assert_method")
	e.str(f.AssertMethod)
	e.separator()
	e.key("assert_method_values")
	e.arrayStart()
	for i, v := range f.Values {
		if i > 0 {
			e.separator()
		}
		e.objectStart()
		e.key("name")
		e.str(v.Name)
		if v.Value != "" {
			e.separator()
			e.key("value")
			e.str(v.Value)
		}
		e.objectEnd()
	}
	e.arrayEnd()
	e.objectEnd()
}
