package tagboard

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxLength is the cell width used when a descriptor carries no
// explicit %LENGTH prefix.
const DefaultMaxLength = 1000

// Column is one rendering rule: which tag selects an item into this column,
// the title shown in the header, and the maximum display width of a cell.
type Column struct {
	MaxLength int
	Tag       string
	Title     string
}

// Descriptor: [%LENGTH]TAG[(TITLE)]. The tag is the shortest run that lets
// the rest of the pattern succeed; the title is the shortest interior of
// (...), so a title containing ')' is cut at the first one and anything after
// that close is dropped. Callers rely on this, keep it.
var descriptorRe = regexp.MustCompile(`(?s)^(?:%(\d+))?(.+?)(?:\((.*?)\).*)?$`)

// ParseColumns parses a pipe-separated list of column descriptors.
// It never fails: a segment that fits no structure becomes a column whose
// tag is the whole segment, and empty segments yield no column at all, so
// an empty spec returns an empty list.
func ParseColumns(spec string) []Column {
	var cols []Column
	for _, desc := range strings.Split(spec, "|") {
		if col, ok := parseDescriptor(desc); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

func parseDescriptor(desc string) (Column, bool) {
	m := descriptorRe.FindStringSubmatch(desc)
	if m == nil {
		return Column{}, false // only the empty segment fails the match
	}
	col := Column{MaxLength: DefaultMaxLength, Tag: m[2], Title: m[3]}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			col.MaxLength = n
		}
	}
	if col.Title == "" {
		col.Title = col.Tag
	}
	return col, true
}
