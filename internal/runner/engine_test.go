package runner

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scu/internal/registry"
)

func newTestEngine() (*Engine, *registry.Registry) {
	reg := &registry.Registry{}
	reg.Register(&registry.TestCase{Line: 20, Name: "second", Description: "d2", Func: func() {}})
	reg.Register(&registry.TestCase{Line: 10, Name: "first", Description: "d1", Tags: []string{"fast"}, Func: func() {}})
	reg.Sort()
	return NewEngine("widget_tests", reg), reg
}

func TestWriteTestListEmitsModuleListThenOrderedCases(t *testing.T) {
	e, _ := newTestEngine()

	var buf bytes.Buffer
	require.NoError(t, e.writeTestList(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var moduleList map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &moduleList))
	assert.Equal(t, "module_list", moduleList["event"])
	assert.Equal(t, "widget_tests", moduleList["name"])

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &second))

	assert.Equal(t, "first", first["name"])
	assert.Equal(t, []interface{}{"fast"}, first["tags"])
	assert.Equal(t, "second", second["name"])
	assert.Equal(t, []interface{}{}, second["tags"])
}

func TestMainListModeWritesToStdoutAndReturnsZero(t *testing.T) {
	e, _ := newTestEngine()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	code := e.Main([]string{"--list"})
	w.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), `"module_list"`)
	assert.Contains(t, buf.String(), `"first"`)
}

func TestMainRejectsBothFlags(t *testing.T) {
	e, _ := newTestEngine()
	code := e.Main([]string{"--list", "--run", "0"})
	assert.Equal(t, 1, code)
}

func TestMainRejectsOutOfRangeIndex(t *testing.T) {
	e, _ := newTestEngine()
	code := e.Main([]string{"--run", "99"})
	assert.Equal(t, 1, code)
}

// readAllBuffered drains r until its read deadline fires, rather than
// waiting for EOF: the engine leaks its command-stream and
// capture-file descriptors by design (see capture.go), so nothing
// ever closes the write end.
func readAllBuffered(t *testing.T, r *os.File) string {
	t.Helper()
	require.NoError(t, r.SetReadDeadline(time.Now().Add(2*time.Second)))

	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if err != nil {
			break
		}
	}
	return buf.String()
}

func TestMainRunModeDrivesHooksCaptureAndTestcaseLifecycle(t *testing.T) {
	reg := &registry.Registry{}
	reg.Register(&registry.TestCase{Line: 1, Name: "passes", Description: "an assertion that holds", Func: func() {
		AccountAssert()
	}})
	reg.Register(&registry.TestCase{Line: 2, Name: "fails_fatal", Description: "a fatal assertion that unwinds", Func: func() {
		ReportFailure("thunk.go", 7, "SCU_ASSERT", "boom")
		TriggerFatal()
		AccountAssert() // unreachable: TriggerFatal unwinds first
	}})
	reg.Sort()

	var setups, teardowns, befores, afters int
	e := NewEngine("e2e_module", reg)
	e.Hooks = Hooks{
		Setup:      func() { setups++ },
		Teardown:   func() { teardowns++ },
		BeforeEach: func() { befores++ },
		AfterEach:  func() { afters++ },
	}
	captureDir := t.TempDir()
	e.Config.CaptureDir = captureDir
	e.Config.CapturePrefix = "e2e"

	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	code := e.Main([]string{"--run", "0", "1"})
	os.Stdout = original

	output := readAllBuffered(t, r)

	assert.Equal(t, 0, code)
	assert.Equal(t, 1, setups)
	assert.Equal(t, 1, teardowns)
	assert.Equal(t, 2, befores)
	assert.Equal(t, 2, afters, "AfterEach must run for both the passing and the fatally-unwound test")

	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		var ev map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}

	var names []interface{}
	for _, ev := range events {
		names = append(names, ev["event"])
	}
	assert.Equal(t, []interface{}{
		"module_start", "setup_start", "setup_end",
		"testcase_start", "testcase_end",
		"testcase_start", "testcase_end",
		"teardown_start", "teardown_end", "module_end",
	}, names)

	firstEnd := events[4]
	assert.Equal(t, true, firstEnd["success"])
	assert.Equal(t, float64(1), firstEnd["asserts"])
	assert.Empty(t, firstEnd["failures"])

	secondEnd := events[6]
	assert.Equal(t, false, secondEnd["success"])
	assert.Equal(t, float64(0), secondEnd["asserts"])
	failures, ok := secondEnd["failures"].([]interface{})
	require.True(t, ok)
	assert.Len(t, failures, 1)

	entries, err := os.ReadDir(captureDir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 4, "setup, both tests, and teardown each redirect into their own capture file")
}
