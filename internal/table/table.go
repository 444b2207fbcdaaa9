// Package table turns fetched records into renderer-neutral row models.
// Nothing here knows about HTML or terminals; see internal/render.
package table

import (
	"fmt"
	"strings"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// BadgeStyle distinguishes coloured text from a filled pill
type BadgeStyle int

const (
	BadgeText BadgeStyle = iota
	BadgeFilled
)

// Badge is a small coloured label for an enumerated field. Color is a
// palette name (red, orange, azure, purple, blue, teal, secondary) or
// empty for the default text colour.
type Badge struct {
	Label string
	Color string
	Style BadgeStyle
}

// Cell is one table cell. Segments carry search highlighting; Href makes
// the cell a link and Badge replaces the text entirely.
type Cell struct {
	Segments []highlight.Segment
	Href     string
	Badge    *Badge
	Muted    bool
}

// Text is the cell content without markup
func (c Cell) Text() string {
	if c.Badge != nil {
		return c.Badge.Label
	}
	var b strings.Builder
	for _, seg := range c.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Row is either a list of cells or, when Empty is set, a single message
// spanning Span columns
type Row struct {
	Cells []Cell
	Empty string
	Span  int
}

// Control is a pagination button
type Control struct {
	Disabled bool
}

// Body is everything a renderer needs to replace the table contents
type Body struct {
	Columns []string
	Rows    []Row
	Showing string
	Prev    Control
	Next    Control
	Page    int
	Pages   int
}

// ShowingLabel formats the footer as "Showing A to B of N noun"
func ShowingLabel(p grid.PageState, returned int, noun string) string {
	if returned == 0 {
		return fmt.Sprintf("Showing 0 to 0 of 0 %s", noun)
	}
	return fmt.Sprintf("Showing %d to %d of %d %s", p.Offset+1, p.Offset+returned, p.Total, noun)
}

// Controls computes prev/next enablement from the count, for both grids
func Controls(p grid.PageState) (prev, next Control) {
	return Control{Disabled: p.Offset == 0}, Control{Disabled: p.Offset+p.Limit >= p.Total}
}

func newBody(columns []string, p grid.PageState, rows []Row, returned int, noun, empty string) Body {
	if len(rows) == 0 {
		rows = []Row{{Empty: empty, Span: len(columns)}}
	}
	prev, next := Controls(p)
	return Body{
		Columns: columns,
		Rows:    rows,
		Showing: ShowingLabel(p, returned, noun),
		Prev:    prev,
		Next:    next,
		Page:    p.CurrentPage(),
		Pages:   p.TotalPages(),
	}
}

func textCell(f model.Field, query string) Cell {
	return Cell{Segments: highlight.Split(f.String(), query)}
}
