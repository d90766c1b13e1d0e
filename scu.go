// Package scu is the public surface a test module imports: it
// registers test cases and module hooks at init time and drives the
// process through scu.Main, which wires the collected registry and
// hooks into the internal execution engine.
package scu

import (
	"os"
	"runtime"

	"scu/internal/config"
	"scu/internal/registry"
	"scu/internal/runner"
	scustrings "scu/pkg/strings"
)

var (
	moduleName = "scu_module"
	reg        = &registry.Registry{}
	hooks      = runner.Hooks{
		Setup:      func() {},
		Teardown:   func() {},
		BeforeEach: func() {},
		AfterEach:  func() {},
	}
)

// descriptionMaxLen bounds a registered test's description to the
// same limit assert_string.go applies to an escaped comparison
// operand (scustrings.DefaultValueDisplayMaxLen): both are
// human-readable text embedded in a single JSON event line.
const descriptionMaxLen = scustrings.DefaultValueDisplayMaxLen

// Module sets the name reported in module_list and module_start. Call
// it before Main; if omitted, the module is reported as
// "scu_module".
func Module(name string) {
	moduleName = name
}

// Setup overrides the module-level setup hook, invoked once before the
// first selected test runs.
func Setup(fn func()) { hooks.Setup = fn }

// Teardown overrides the module-level teardown hook, invoked once
// after the last selected test completes.
func Teardown(fn func()) { hooks.Teardown = fn }

// BeforeEach overrides the hook invoked before every selected test.
func BeforeEach(fn func()) { hooks.BeforeEach = fn }

// AfterEach overrides the hook invoked after every selected test,
// including after a fatal assertion unwound the test.
func AfterEach(fn func()) { hooks.AfterEach = fn }

// Test registers a test case. name identifies it in --run output and
// failure reports; description is a short human summary (truncated to
// descriptionMaxLen); tags are informational only — nothing filters
// or schedules on them. The source line of this call site — not of
// Test's definition — is captured via runtime.Caller and used as the
// sort key that fixes execution order regardless of package
// initialization order across files.
func Test(name, description string, tags []string, fn func()) {
	_, _, line, _ := runtime.Caller(1)
	if len(tags) > registry.MaxTags {
		tags = tags[:registry.MaxTags]
	}
	reg.Register(&registry.TestCase{
		Line:        line,
		Name:        name,
		Description: scustrings.TruncateDescription(description, descriptionMaxLen),
		Tags:        tags,
		Func:        fn,
	})
}

// Main builds the execution engine from the registered tests and
// hooks, parses os.Args[1:], runs the selected mode, and terminates
// the process with the resulting exit code. It is the last call a
// test module's main function makes.
func Main() {
	e := runner.NewEngine(moduleName, reg)
	e.Hooks = hooks
	if cfg, err := config.Load(config.DefaultPath()); err == nil {
		e.Config = cfg
	}
	os.Exit(e.Main(os.Args[1:]))
}
