package runner

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// MaxTests bounds the number of indices a single --run invocation may
// name.
const MaxTests = 4096

// Mode is the resolved CLI mode.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeList
	ModeRun
)

// Arguments is the parsed, validated command line.
type Arguments struct {
	Mode    Mode
	Indices []int
}

// ResolveArguments validates the --list/--run flags and positional
// index arguments against numTests, the size of the sorted registry.
// Exactly one of --list or --run is required, --run requires at least
// one and at most MaxTests indices each in [0, numTests), and --list
// accepts no
// positional arguments.
func ResolveArguments(list, run bool, positional []string, numTests int) (Arguments, error) {
	switch {
	case list && run:
		return Arguments{}, fmt.Errorf("--list and --run are mutually exclusive")
	case list:
		if len(positional) > 0 {
			return Arguments{}, fmt.Errorf("--list takes no arguments")
		}
		return Arguments{Mode: ModeList}, nil
	case run:
		if len(positional) == 0 {
			return Arguments{}, fmt.Errorf("--run requires at least one test index")
		}
		if len(positional) > MaxTests {
			return Arguments{}, fmt.Errorf("too many --run indices: %d (max %d)", len(positional), MaxTests)
		}
		indices := make([]int, 0, len(positional))
		for _, p := range positional {
			idx, err := strconv.Atoi(p)
			if err != nil {
				return Arguments{}, fmt.Errorf("invalid index %q: not an integer", p)
			}
			if idx < 0 || idx >= numTests {
				return Arguments{}, fmt.Errorf("invalid index %d: out of range [0, %d)", idx, numTests)
			}
			indices = append(indices, idx)
		}
		return Arguments{Mode: ModeRun, Indices: indices}, nil
	default:
		if len(positional) > 0 {
			return Arguments{}, fmt.Errorf("extraneous arguments without --run")
		}
		return Arguments{}, fmt.Errorf("specify --list or --run I...")
	}
}

// newRootCommand builds the cobra command for a test module's CLI
// surface: --list and --run, with positional arguments after --run
// naming the indices to execute. Index validation happens in
// ResolveArguments once numTests (the sorted registry size) is known.
func newRootCommand(moduleName string, numTests int, onRun func(Arguments) error) *cobra.Command {
	var list, run bool

	cmd := &cobra.Command{
		Use:           moduleName,
		Short:         moduleName + " test module",
		SilenceUsage:  false,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ResolveArguments(list, run, args, numTests)
			if err != nil {
				return err
			}
			return onRun(parsed)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list available test cases")
	cmd.Flags().BoolVar(&run, "run", false, "run the test cases identified by the supplied indices")
	return cmd
}
