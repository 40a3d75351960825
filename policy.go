package tagboard

type RowPolicy int

const (
	DropUnmatched RowPolicy = iota // suppress rows for items that hit no column
	KeepUnmatched                  // render the all-blank row anyway
)

type Renderer struct {
	policy RowPolicy
	marker string
}
