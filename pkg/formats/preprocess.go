package formats

import (
	"errors"
	"fmt"
	"strings"
)

// Preprocessor errors.
var (
	ErrUnbalancedConditional = errors.New("unbalanced conditional directives")
)

// versionSymbol is the single build-variant symbol the decomp keys its
// regional conditionals on.
const versionSymbol = "VERSION_JP"

// Variant selects which side of VERSION_JP conditionals survives.
type Variant int

// Build variants.
const (
	VariantJP Variant = iota // Japanese build: VERSION_JP defined
	VariantUS                // US/international build: VERSION_JP undefined
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case VariantJP:
		return "jp"
	case VariantUS:
		return "us"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// ParseVariant converts a string like "jp" or "us" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "jp", "a":
		return VariantJP, nil
	case "us", "b":
		return VariantUS, nil
	default:
		return VariantUS, fmt.Errorf("unknown variant %q", s)
	}
}

// condState tracks one open conditional block.
type condState struct {
	keeping   bool // lines in the current branch survive
	sawActive bool // some branch of this block was the active one
}

// Preprocess resolves nested #ifdef/#ifndef/#else/#endif blocks keyed on
// VERSION_JP for the chosen variant, returning the surviving lines with all
// directive lines removed. Directives the scanner does not recognize
// (#include, #define, unrelated #ifdefs and their #else/#endif pairing is
// still tracked) are dropped. Input without any conditional directives passes
// through unchanged.
//
// Nesting depth is tracked explicitly: a branch that is itself inside a
// discarded branch never survives regardless of its own condition. Malformed
// nesting (an #else or #endif with no open block, or a block left open at end
// of input) returns ErrUnbalancedConditional, since any output after a
// tracking failure is unreliable.
func Preprocess(text string, variant Variant) (string, error) {
	defined := variant == VariantJP

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	var stack []condState

	// keeping reports whether every open block is currently on its live branch.
	keeping := func() bool {
		for _, s := range stack {
			if !s.keeping {
				return false
			}
		}
		return true
	}

	changed := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			if keeping() {
				out = append(out, line)
			} else {
				changed = true
			}
			continue
		}
		changed = true

		directive, arg := splitDirective(trimmed)
		switch directive {
		case "ifdef", "ifndef":
			keep := true
			if arg == versionSymbol {
				keep = defined == (directive == "ifdef")
			}
			stack = append(stack, condState{keeping: keep, sawActive: keep})
		case "else":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: #else without #ifdef", ErrUnbalancedConditional)
			}
			top := &stack[len(stack)-1]
			top.keeping = !top.sawActive
			top.sawActive = top.sawActive || top.keeping
		case "endif":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: #endif without #ifdef", ErrUnbalancedConditional)
			}
			stack = stack[:len(stack)-1]
		default:
			// Other directives (#include, #define, ...) carry no collision
			// data and are dropped.
		}
	}

	if len(stack) != 0 {
		return "", fmt.Errorf("%w: %d unterminated block(s)", ErrUnbalancedConditional, len(stack))
	}

	if !changed {
		return text, nil
	}
	return strings.Join(out, "\n"), nil
}

// splitDirective splits "#ifdef VERSION_JP" into ("ifdef", "VERSION_JP").
func splitDirective(line string) (directive, arg string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}
