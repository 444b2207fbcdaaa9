// Package term renders grid bodies for a terminal with lipgloss.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// Palette maps the badge colour names to terminal colours
var Palette = map[string]lipgloss.Color{
	"red":       lipgloss.Color("#d63939"),
	"orange":    lipgloss.Color("#f76707"),
	"azure":     lipgloss.Color("#4299e1"),
	"purple":    lipgloss.Color("#ae3ec9"),
	"blue":      lipgloss.Color("#206bc4"),
	"teal":      lipgloss.Color("#0ca678"),
	"secondary": lipgloss.Color("#667382"),
}

// Styles are the lipgloss styles one theme renders with
type Styles struct {
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Link      lipgloss.Style
	Highlight lipgloss.Style
	Border    lipgloss.Style
	Footer    lipgloss.Style
	Disabled  lipgloss.Style
	Enabled   lipgloss.Style
}

// NewStyles derives the styles for h's theme. On a dark theme matches
// are recoloured, on a light theme they get a background, the same
// split the browser console makes.
func NewStyles(h highlight.Highlighter) Styles {
	text, faint, border := lipgloss.Color("252"), lipgloss.Color("244"), lipgloss.Color("238")
	if h.Theme() == highlight.Light {
		text, faint, border = lipgloss.Color("235"), lipgloss.Color("243"), lipgloss.Color("250")
	}

	s := Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(faint),
		Link:     lipgloss.NewStyle().Underline(true),
		Border:   lipgloss.NewStyle().Foreground(border),
		Footer:   lipgloss.NewStyle().Foreground(faint),
		Disabled: lipgloss.NewStyle().Foreground(border),
		Enabled:  lipgloss.NewStyle().Bold(true).Foreground(text),
	}
	if h.Theme() == highlight.Dark {
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color(h.Color()))
	} else {
		s.Highlight = lipgloss.NewStyle().Background(lipgloss.Color(h.Color()))
	}
	return s
}

// Renderer turns table bodies into terminal text
type Renderer struct {
	styles Styles
}

// New returns a Renderer for h's theme
func New(h highlight.Highlighter) Renderer {
	return Renderer{styles: NewStyles(h)}
}

// Segments renders highlighted text
func (r Renderer) Segments(segments []highlight.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Match {
			b.WriteString(r.styles.Highlight.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Badge renders a badge as coloured text, filled badges as a pill
func (r Renderer) Badge(b table.Badge) string {
	style := lipgloss.NewStyle().Bold(true)
	color, ok := Palette[b.Color]
	if b.Style == table.BadgeFilled {
		style = style.Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
		if ok {
			style = style.Background(color)
		}
	} else if ok {
		style = style.Foreground(color)
	}
	return style.Render(b.Label)
}

// Cell renders one table cell
func (r Renderer) Cell(c table.Cell) string {
	if c.Badge != nil {
		return r.Badge(*c.Badge)
	}
	text := r.Segments(c.Segments)
	switch {
	case c.Muted:
		return r.styles.Muted.Render(text)
	case c.Href != "":
		return r.styles.Link.Render(text)
	default:
		return text
	}
}

// Table renders the column headers and rows. An empty body renders its
// message under the headers.
func (r Renderer) Table(b table.Body) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(b.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return r.styles.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	var empty string
	for _, row := range b.Rows {
		if row.Empty != "" {
			empty = row.Empty
			continue
		}
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = r.Cell(c)
		}
		t.Row(cells...)
	}

	out := t.Render()
	if empty != "" {
		width := lipgloss.Width(out)
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Muted.Render(empty)))
	}
	return out
}

// Footer renders the showing label and the pagination controls
func (r Renderer) Footer(b table.Body) string {
	prev := r.control("[p] prev", b.Prev.Disabled)
	next := r.control("[n] next", b.Next.Disabled)

	parts := []string{r.styles.Footer.Render(b.Showing), prev}
	if b.Pages > 0 {
		parts = append(parts, r.styles.Footer.Render(pageIndicator(b.Page, b.Pages)))
	}
	parts = append(parts, next)
	return strings.Join(parts, "  ")
}

func (r Renderer) control(label string, disabled bool) string {
	if disabled {
		return r.styles.Disabled.Render(label)
	}
	return r.styles.Enabled.Render(label)
}

// Body renders the table followed by its footer
func (r Renderer) Body(b table.Body) string {
	return lipgloss.JoinVertical(lipgloss.Left, r.Table(b), r.Footer(b))
}

func pageIndicator(page, pages int) string {
	return fmt.Sprintf("page %d/%d", page, pages)
}
