// Package strings provides the single-line, rune-safe truncation
// helper package scu uses to bound a registered test's description
// (scu.Test, via TruncateDescription) and shares the same limit of
// 256 with the escaped comparison operands assert_string.go embeds in
// a failure report (counted in characters for a description, in bytes
// for an escaped operand): both are human-readable text riding inside a
// single JSON event line, so neither should be allowed to grow
// unbounded relative to the other.
package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is this package's own fallback bound, used
// only by a caller with no domain-specific limit of its own.
const DefaultDescriptionMaxLen = 60

// DefaultValueDisplayMaxLen is the bound of 256 that scu.Test applies
// to a registered description (in characters, via TruncateDescription)
// and the assert_string.go family applies to an escaped comparison
// operand (in bytes).
const DefaultValueDisplayMaxLen = 256

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateDescription truncates a string to maxLen characters and ensures single-line output.
// It replaces newlines with spaces, collapses multiple whitespace characters into single spaces,
// and adds "..." if truncated.
//
// The function handles Unicode correctly by operating on runes rather than bytes,
// preventing truncation in the middle of multi-byte characters.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen to ensure
// there is room for at least one character plus "...".
//
// Args:
//   - s: The string to truncate
//   - maxLen: Maximum length of the result (including "..." if truncated)
//
// Returns:
//   - Truncated and sanitized string
func TruncateDescription(s string, maxLen int) string {
	// Clamp maxLen to minimum value to prevent panic from negative slice index
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	// Use strings.Fields to split on any whitespace (handles \n, \r, \t, multiple spaces)
	// then rejoin with single spaces. This is more efficient than multiple ReplaceAll calls.
	s = strings.Join(strings.Fields(s), " ")

	// Use rune-based slicing to handle Unicode correctly
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
