package tagboard

import (
	"fmt"
	"strings"
)

// Position locates a diagnostic within a column spec string.
type Position struct {
	Descriptor int // 0-based index of the |-delimited descriptor
	Offset     int // 0-based byte offset within that descriptor
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("descriptor %d, offset %d", p.Descriptor, p.Offset)
}

// Diagnostic codes reported by the built-in lint rules.
const (
	CodeEmptyDescriptor = "empty-descriptor"
	CodeDuplicateTag    = "duplicate-tag"
	CodeZeroWidth       = "zero-width"
	CodeTitleCut        = "title-cut"
)

// Diagnostic is an advisory finding about a column spec. Parsing is total,
// so nothing here ever blocks a render; diagnostics exist for the data-entry
// surfaces that build spec strings and want feedback before inserting one.
type Diagnostic struct {
	Pos     Position // Position of the finding
	Code    string   // Stable machine-readable code
	Message string   // Human-readable message
	Context string   // Offending descriptor with a caret marker
}

// String formats the diagnostic with its position and context.
func (d Diagnostic) String() string {
	if d.Context != "" {
		return fmt.Sprintf("%s at %s: %s\nContext: %s", d.Code, d.Pos, d.Message, d.Context)
	}
	return fmt.Sprintf("%s at %s: %s", d.Code, d.Pos, d.Message)
}

// NewDiagnostic creates a Diagnostic with context extracted from the
// descriptor the position points into.
func NewDiagnostic(pos Position, code, message, descriptor string) Diagnostic {
	return Diagnostic{
		Pos:     pos,
		Code:    code,
		Message: message,
		Context: extractContext(descriptor, pos.Offset),
	}
}

// extractContext renders the descriptor with a caret under the offset.
func extractContext(descriptor string, offset int) string {
	if descriptor == "" {
		return ""
	}
	if offset > len(descriptor) {
		offset = len(descriptor)
	}
	return descriptor + "\n" + strings.Repeat(" ", offset) + "^"
}
