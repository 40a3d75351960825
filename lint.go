package tagboard

import (
	"fmt"
	"strings"
)

// Rule is one advisory check over a column spec.
type Rule interface {
	// Check inspects the spec and its parse per descriptor. cols holds the
	// parse result for each |-delimited segment, nil where the segment
	// produced no column.
	Check(spec string, descriptors []string, cols []*Column) []Diagnostic
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(spec string, descriptors []string, cols []*Column) []Diagnostic

// Check implements the Rule interface.
func (f RuleFunc) Check(spec string, descriptors []string, cols []*Column) []Diagnostic {
	return f(spec, descriptors, cols)
}

// LintRegistry manages the rules applied by Lint.
type LintRegistry struct {
	rules []Rule
}

// NewLintRegistry creates an empty registry.
func NewLintRegistry() *LintRegistry {
	return &LintRegistry{}
}

// Register adds a rule. Rules run in registration order.
func (r *LintRegistry) Register(rule Rule) {
	if rule == nil {
		return
	}
	r.rules = append(r.rules, rule)
}

// Lint splits and parses the spec once, then runs every registered rule.
func (r *LintRegistry) Lint(spec string) []Diagnostic {
	descriptors := strings.Split(spec, "|")
	cols := make([]*Column, len(descriptors))
	for i, desc := range descriptors {
		if col, ok := parseDescriptor(desc); ok {
			c := col
			cols[i] = &c
		}
	}
	var out []Diagnostic
	for _, rule := range r.rules {
		out = append(out, rule.Check(spec, descriptors, cols)...)
	}
	return out
}

// DefaultLintRegistry returns a registry loaded with the built-in rules.
func DefaultLintRegistry() *LintRegistry {
	r := NewLintRegistry()
	r.Register(RuleFunc(checkEmptyDescriptors))
	r.Register(RuleFunc(checkDuplicateTags))
	r.Register(RuleFunc(checkZeroWidth))
	r.Register(RuleFunc(checkTitleCut))
	return r
}

// LintSpec runs the built-in rules against a spec string.
func LintSpec(spec string) []Diagnostic {
	return DefaultLintRegistry().Lint(spec)
}

func checkEmptyDescriptors(_ string, descriptors []string, _ []*Column) []Diagnostic {
	var out []Diagnostic
	for i, desc := range descriptors {
		if desc != "" {
			continue
		}
		out = append(out, NewDiagnostic(
			Position{Descriptor: i},
			CodeEmptyDescriptor,
			"empty descriptor produces no column",
			desc,
		))
	}
	return out
}

func checkDuplicateTags(_ string, descriptors []string, cols []*Column) []Diagnostic {
	var out []Diagnostic
	seen := map[string]int{}
	for i, col := range cols {
		if col == nil {
			continue
		}
		if first, dup := seen[col.Tag]; dup {
			out = append(out, NewDiagnostic(
				Position{Descriptor: i},
				CodeDuplicateTag,
				fmt.Sprintf("tag %q already used by descriptor %d; both columns will fire for the same item", col.Tag, first),
				descriptors[i],
			))
			continue
		}
		seen[col.Tag] = i
	}
	return out
}

func checkZeroWidth(_ string, descriptors []string, cols []*Column) []Diagnostic {
	var out []Diagnostic
	for i, col := range cols {
		if col == nil || col.MaxLength != 0 {
			continue
		}
		out = append(out, NewDiagnostic(
			Position{Descriptor: i, Offset: 1},
			CodeZeroWidth,
			"column width 0 leaves no room for any heading",
			descriptors[i],
		))
	}
	return out
}

// checkTitleCut flags descriptors whose title group closes before the end of
// the descriptor: the title stops at the first ')' and the trailing text is
// silently dropped by the parser.
func checkTitleCut(_ string, descriptors []string, cols []*Column) []Diagnostic {
	var out []Diagnostic
	for i, desc := range descriptors {
		if cols[i] == nil {
			continue
		}
		open := strings.Index(desc, "(")
		if open < 0 {
			continue
		}
		rel := strings.Index(desc[open+1:], ")")
		if rel < 0 {
			continue
		}
		at := open + 1 + rel
		if at == len(desc)-1 {
			continue
		}
		// Only flag when the parser actually took the interior as the title;
		// otherwise the parens landed inside a fallback tag.
		if cols[i].Title != desc[open+1:at] {
			continue
		}
		out = append(out, NewDiagnostic(
			Position{Descriptor: i, Offset: at},
			CodeTitleCut,
			"title ends at the first ')'; text after it is ignored",
			desc,
		))
	}
	return out
}
