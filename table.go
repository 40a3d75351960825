package tagboard

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Item is one outline entry: a display heading and the tags attached to it.
// The heading is opaque to the renderer; it is copied verbatim apart from
// truncation, any markup in it included.
type Item struct {
	Heading string
	Tags    []string
}

func (it Item) hasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Row is one table line before stringification, one cell per column.
type Row []string

// String renders the row pipe-delimited with leading and trailing pipes.
func (r Row) String() string {
	return "|" + strings.Join(r, "|") + "|"
}

// ===== Sink =====

// RowSink receives each surviving row as it is produced, letting a host run
// its own alignment or native-table insertion pass instead of taking the
// joined text block.
type RowSink interface {
	OnRow(row Row)
}

type RowSinkFunc func(row Row)

func (f RowSinkFunc) OnRow(row Row) { f(row) }

// ===== Renderer =====

const separatorLine = "|--|"

func NewRenderer(opts ...func(*Renderer)) *Renderer {
	r := &Renderer{policy: DropUnmatched, marker: "…"}
	for _, o := range opts {
		o(r)
	}
	return r
}

func WithRowPolicy(p RowPolicy) func(*Renderer) {
	return func(r *Renderer) { r.policy = p }
}

// WithMarker sets the truncation marker appended to a cut heading. The
// marker counts against the column width; an empty marker gives a plain
// bounded cut.
func WithMarker(m string) func(*Renderer) {
	return func(r *Renderer) { r.marker = m }
}

// Render produces the full table: header, separator, then one line per item
// that matched at least one column, in item order. Every line is newline
// terminated, so zero columns or zero items degrade to "||\n|--|\n".
func (r *Renderer) Render(columns []Column, items []Item) string {
	var sb strings.Builder
	r.WriteTable(&sb, columns, items) // strings.Builder never errors
	return sb.String()
}

// WriteTable is Render writing each line to w as it is built.
func (r *Renderer) WriteTable(w io.Writer, columns []Column, items []Item) error {
	if _, err := io.WriteString(w, headerLine(columns)+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, separatorLine+"\n"); err != nil {
		return err
	}
	var werr error
	r.EmitRows(columns, items, RowSinkFunc(func(row Row) {
		if werr != nil {
			return
		}
		_, werr = io.WriteString(w, row.String()+"\n")
	}))
	return werr
}

// EmitRows feeds each surviving row to sink, in item order.
func (r *Renderer) EmitRows(columns []Column, items []Item, sink RowSink) {
	for _, it := range items {
		row, matched := r.rowFor(columns, it)
		if !matched && r.policy == DropUnmatched {
			continue
		}
		sink.OnRow(row)
	}
}

// rowFor builds the candidate row for one item. matched reports whether any
// column's tag is in the item's tag set; with DropUnmatched an unmatched
// row is discarded by the caller.
func (r *Renderer) rowFor(columns []Column, it Item) (row Row, matched bool) {
	row = make(Row, len(columns))
	for i, col := range columns {
		if !it.hasTag(col.Tag) {
			continue
		}
		row[i] = runewidth.Truncate(it.Heading, col.MaxLength, r.marker)
		matched = true
	}
	return row, matched
}

func headerLine(columns []Column) string {
	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.Title
	}
	return Row(titles).String()
}

// Render is the package-level convenience with default policy and marker.
func Render(columns []Column, items []Item) string {
	return NewRenderer().Render(columns, items)
}
