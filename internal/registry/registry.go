// Package registry holds the process-wide, append-only list of
// registered test cases that every scu test module builds before its
// execution engine runs.
package registry

import "sort"

// MaxTags bounds the number of tags a single TestCase may carry.
const MaxTags = 128

// TestCase is one registered test: a name, description, optional tags,
// the source line of its registration call, and the thunk that runs
// it. Once constructed it is immutable; only Index is assigned later,
// after sorting.
type TestCase struct {
	// Index is the position of this case in the sorted registry,
	// assigned by Registry.Sort. It is the identifier used by --run.
	Index int

	// Line is the source line of the scu.Test(...) call, captured via
	// runtime.Caller at registration time. It is the sort key that
	// preserves declaration order regardless of init() scheduling
	// across files.
	Line int

	Name        string
	Description string
	Tags        []string

	// Func is invoked with no parameters inside the execution
	// engine's recovery landing pad; it reports failures through the
	// package-global per-test accounting state, not through a return
	// value or parameter.
	Func func()
}

// Registry is the append-only, doubling-capacity list of registered
// test cases. The zero value is ready to use.
//
// Growth mirrors the reference implementation's realloc trigger:
// capacity doubles whenever (len+1)&len == 0, starting from an
// initial capacity of 1. In Go this policy has no observable effect
// beyond amortized append cost (append already doubles internally),
// but it is kept explicit because the growth sequence is an invariant
// callers may depend on.
type Registry struct {
	cases []*TestCase
	cap   int
}

// Register appends tc to the registry. It must only be called during
// package initialization (from test files' init functions), before
// Sort runs; it is not safe for concurrent use.
func (r *Registry) Register(tc *TestCase) {
	if r.cap == 0 {
		r.cap = 1
	}
	if ((len(r.cases)+1)&len(r.cases)) == 0 && len(r.cases)+1 > r.cap {
		r.cap *= 2
	}
	r.cases = append(r.cases, tc)
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	return len(r.cases)
}

// Get returns the case at idx. idx must be in [0, Len()).
func (r *Registry) Get(idx int) *TestCase {
	return r.cases[idx]
}

// All returns the full ordered slice of registered cases. Callers
// must not mutate the returned slice.
func (r *Registry) All() []*TestCase {
	return r.cases
}

// Sort orders the registry by source line ascending, breaking ties by
// registration order (Go's sort.SliceStable preserves the original
// relative order of equal-line entries, matching the reference
// implementation's qsort-on-line behavior for the common case of
// distinct lines, and improving on it — qsort is not stable — for the
// tie-breaking case). It then assigns Index to each case in the
// resulting order.
func (r *Registry) Sort() {
	sort.SliceStable(r.cases, func(i, j int) bool {
		return r.cases[i].Line < r.cases[j].Line
	})
	for i, tc := range r.cases {
		tc.Index = i
	}
}
