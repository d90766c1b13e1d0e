// Package runner implements the execution engine: CLI dispatch
// between list and run mode, capture-file redirection, module/test
// lifecycle hooks, timing, the panic/recover fatal-assertion recovery
// pad, and the per-test accounting state (state.go) the assertion
// engine in package scu reports into.
package runner

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"scu/internal/config"
	"scu/internal/protocol"
	"scu/internal/registry"
	"scu/pkg/logging"
)

// Hooks are the four module-level procedures a test module may
// override. All default to no-ops.
type Hooks struct {
	Setup      func()
	Teardown   func()
	BeforeEach func()
	AfterEach  func()
}

func defaultHooks() Hooks {
	noop := func() {}
	return Hooks{Setup: noop, Teardown: noop, BeforeEach: noop, AfterEach: noop}
}

// Engine owns the module's registry, hooks, and name, and drives the
// list/run control flow.
type Engine struct {
	ModuleName string
	Registry   *registry.Registry
	Hooks      Hooks
	Config     config.Config
}

// NewEngine constructs an Engine with no-op hooks and default
// configuration; callers (package scu) override Hooks fields and may
// replace Config before calling Main.
func NewEngine(moduleName string, reg *registry.Registry) *Engine {
	return &Engine{
		ModuleName: moduleName,
		Registry:   reg,
		Hooks:      defaultHooks(),
		Config:     config.Default(),
	}
}

// Main builds the CLI surface, parses arguments, and dispatches to
// list or run mode. It returns the process exit code; it never calls
// os.Exit itself so that callers (and tests) retain control of
// process termination, except in the one case that mandates an
// unconditional abort: a fatal assertion's thread-of-origin
// violation, handled via the registered violation handler below.
//
// It locks the calling goroutine to its current OS thread for the
// remainder of the process. Without this, Go's scheduler is free to
// migrate the goroutine that runs test thunks to a different OS
// thread across any blocking point (a channel op with no ready
// partner, time.Sleep, mutex contention, the netpoller) — all things
// a thunk may legitimately do on a single goroutine. currentThreadID
// would then change mid-thunk with no actual cross-goroutine
// violation, and AccountFatalAssert would fire the violation handler
// on a false positive. Locking makes "the thread that entered the
// thunk" a stable identity for the test's lifetime.
func (e *Engine) Main(args []string) int {
	runtime.LockOSThread()
	logging.InitForCLI(logging.LevelWarn, os.Stderr)
	logging.Logr().V(1).Info("engine initialized", "module", e.ModuleName, "tests", e.Registry.Len())
	e.Registry.Sort()

	var configPath string
	cmd := newRootCommand(e.ModuleName, e.Registry.Len(), func(parsed Arguments) error {
		if configPath != "" {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			e.Config = cfg
		}
		switch parsed.Mode {
		case ModeList:
			return e.listTests()
		case ModeRun:
			return e.runTests(parsed.Indices)
		default:
			return fmt.Errorf("unreachable: unresolved mode")
		}
	})
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML configuration file overriding capture defaults")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// listTests writes module_list followed by one testcase_list per
// registered case, to standard output directly (no command-stream
// duplication happens in list mode).
func (e *Engine) listTests() error {
	return e.writeTestList(os.Stdout)
}

func (e *Engine) writeTestList(w io.Writer) error {
	if err := protocol.WriteModuleList(w, e.ModuleName); err != nil {
		return err
	}
	for _, tc := range e.Registry.All() {
		if err := protocol.WriteTestCaseList(w, tc.Line, tc.Name, tc.Description, tc.Tags); err != nil {
			return err
		}
	}
	return nil
}

// runTests drives module setup, the selected tests in order, and
// module teardown, all narrated on the command stream.
func (e *Engine) runTests(indices []int) error {
	runID := uuid.NewString()
	logging.Info("engine", "run %s: starting module %s", logging.TruncateRunID(runID), e.ModuleName)

	cmdStream, err := dupCommandStream()
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	SetThreadViolationHandler(func(file string, line int, message string) {
		logging.Error("engine", fmt.Errorf(message), "run %s: fatal assertion contract violation at %s:%d", logging.TruncateRunID(runID), file, line)
		_ = protocol.WriteTestCaseError(cmdStream, message, file, line)
		os.Exit(1)
	})

	if os.Getenv(e.Config.DebuggerWaitEnv) != "" {
		waitForDebugger()
	}

	if err := protocol.WriteModuleStart(cmdStream, e.ModuleName); err != nil {
		return err
	}

	setupFile, err := redirectOutput(e.Config.CaptureDir, e.Config.CapturePrefix)
	if err != nil {
		return fmt.Errorf("run %s: setup capture: %w", runID, err)
	}
	if err := protocol.WriteSetupStart(cmdStream, setupFile); err != nil {
		return err
	}
	e.Hooks.Setup()
	if err := protocol.WriteSetupEnd(cmdStream); err != nil {
		return err
	}

	for _, idx := range indices {
		if err := e.runOneTest(cmdStream, idx); err != nil {
			return err
		}
	}

	teardownFile, err := redirectOutput(e.Config.CaptureDir, e.Config.CapturePrefix)
	if err != nil {
		return fmt.Errorf("run %s: teardown capture: %w", runID, err)
	}
	if err := protocol.WriteTeardownStart(cmdStream, teardownFile); err != nil {
		return err
	}
	e.Hooks.Teardown()
	if err := protocol.WriteTeardownEnd(cmdStream); err != nil {
		return err
	}

	return protocol.WriteModuleEnd(cmdStream)
}

// runOneTest executes the registered case at idx: fresh capture file,
// testcase_start, before/after-each, timed and recovery-guarded
// invocation of the thunk, testcase_end.
func (e *Engine) runOneTest(cmdStream *os.File, idx int) error {
	tc := e.Registry.Get(idx)

	outputFile, err := redirectOutput(e.Config.CaptureDir, e.Config.CapturePrefix)
	if err != nil {
		return fmt.Errorf("test %d capture: %w", idx, err)
	}
	if err := protocol.WriteTestCaseStart(cmdStream, idx, tc.Name, outputFile); err != nil {
		return err
	}

	ResetTestState()
	e.Hooks.BeforeEach()

	startMono := time.Now()
	startCPU := processCPUTime()

	EnterThunk()
	invokeThunk(tc.Func)
	ExitThunk()

	duration := time.Since(startMono).Seconds()
	cpuTime := processCPUTime() - startCPU

	e.Hooks.AfterEach()

	return protocol.WriteTestCaseEnd(cmdStream, idx, Success(), AssertCount(), duration, cpuTime, FailureList())
}

// invokeThunk runs fn inside the recovery landing pad: a fatal
// assertion's panic(fatalAssertion{}) is caught here and only here,
// so any other panic (a genuine bug in the test) propagates and
// crashes the process — an observer of the JSON stream sees the
// missing testcase_end.
func invokeThunk(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(fatalAssertion); !ok {
				panic(r)
			}
		}
	}()
	fn()
}
