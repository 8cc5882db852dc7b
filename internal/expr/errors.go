package expr

import (
	"fmt"
	"strings"
)

// SyntaxError reports malformed expression source. It carries the full
// source text and the byte offset of the offending token so callers can
// render a caret pointing at the problem.
type SyntaxError struct {
	Source  string
	Offset  int
	Message string
}

// Error renders the message, the source line, and a caret under the offset.
func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "syntax error at offset %d: %s\n", e.Offset, e.Message)
	sb.WriteString("  ")
	sb.WriteString(e.Source)
	sb.WriteString("\n  ")
	offset := e.Offset
	if offset > len(e.Source) {
		offset = len(e.Source)
	}
	sb.WriteString(strings.Repeat(" ", offset))
	sb.WriteString("^")
	return sb.String()
}

func syntaxErrorf(source string, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Source:  source,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
