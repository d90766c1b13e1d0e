// Package protocol writes the scu command-stream event protocol: one
// JSON object per line, field order fixed per event type, written
// token-by-token to an io.Writer with no intermediate document model
// so that a streaming parser can consume events as they arrive and
// partial output survives a process abort mid-test.
package protocol

import (
	"fmt"
	"io"
	"strconv"

	"scu/internal/escape"
)

// emitter writes the JSON primitives directly to w. It tracks nothing
// about document structure; callers are responsible for matching
// start/end calls and separators, exactly as the reference emitter
// this is grounded on does.
type emitter struct {
	w   io.Writer
	err error
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: w}
}

func (e *emitter) raw(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *emitter) objectStart() { e.raw("{") }
func (e *emitter) objectEnd()   { e.raw("}") }
func (e *emitter) arrayStart()  { e.raw("[") }
func (e *emitter) arrayEnd()    { e.raw("]") }
func (e *emitter) separator()   { e.raw(", ") }

func (e *emitter) key(k string) {
	e.raw(`"` + k + `": `)
}

func (e *emitter) str(s string) {
	e.raw(`"` + escape.JSON(s) + `"`)
}

func (e *emitter) integer(v int) {
	e.raw(strconv.Itoa(v))
}

func (e *emitter) real(v float64) {
	e.raw(fmt.Sprintf("%f", v))
}

func (e *emitter) boolean(v bool) {
	if v {
		e.raw("true")
	} else {
		e.raw("false")
	}
}

func (e *emitter) newline() { e.raw("\n") }
