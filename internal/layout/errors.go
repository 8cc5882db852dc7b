package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReentrantPass is returned when Layout is invoked from inside an
// in-progress pass (for example from a measure callback). Nesting passes is
// never legal; the caller gets a deterministic fault instead.
var ErrReentrantPass = errors.New("layout: pass already in progress")

// InvalidPropsError reports a contract violation found during property
// validation, before any layout work begins: negative padding or gap,
// out-of-range integers, bad grid tracks or spans, or an expression on a
// property that does not accept one.
type InvalidPropsError struct {
	NodeID  string // "" when the node has no id
	Field   string
	Message string
}

func (e *InvalidPropsError) Error() string {
	if e.NodeID != "" {
		return fmt.Sprintf("invalid props on #%s: %s: %s", e.NodeID, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid props: %s: %s", e.Field, e.Message)
}

// InvalidConstraintError reports a resolution fault in an expression:
// unknown function, unknown metric or reference space, an unknown or
// ambiguous #id target, or misuse of an aggregation function.
type InvalidConstraintError struct {
	Source  string // expression source text
	Message string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q: %s", e.Source, e.Message)
}

// CircularConstraintError reports a dependency cycle between expression
// properties. Path lists the participants as "id.property" (or
// "kind.property" for anonymous nodes) in first-detected order, with the
// closing node repeated.
type CircularConstraintError struct {
	Path []string
}

func (e *CircularConstraintError) Error() string {
	return "circular constraint: " + strings.Join(e.Path, " -> ")
}
