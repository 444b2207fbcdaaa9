package web

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// Links are the hrefs of the pagination buttons. An empty href renders a
// disabled button.
type Links struct {
	Prev string
	Next string
}

// ComputerGrid is the data behind the computer list page
type ComputerGrid struct {
	Body   table.Body
	Search string
	Links  Links
	// Error replaces the table with a failure panel
	Error string
}

// TicketGrid is the data behind the ticket list page
type TicketGrid struct {
	Body     table.Body
	Statuses []model.TicketStatus
	Links    Links
	Error    string
}

var statusLabels = map[model.TicketStatus]string{
	model.StatusOpen:       "Open",
	model.StatusClosed:     "Closed",
	model.StatusInProgress: "In Progress",
	model.StatusAwaiting:   "Awaiting Reply",
}

// ComputerPage renders the computer grid with its search box
func ComputerPage(h highlight.Highlighter, g ComputerGrid) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw("<div class=\"card\"><div class=\"card-header\"><h3 class=\"card-title\">Computers</h3>")
		w.raw("<div class=\"ms-auto\"><form method=\"get\" action=\"/computers\" class=\"d-flex\" role=\"search\">")
		w.raw("<input type=\"hidden\" name=\"action\" value=\"search\">")
		w.printf("<input type=\"search\" class=\"form-control form-control-sm\" name=\"search\" id=\"search\" placeholder=\"Search…\" value=\"%s\" aria-label=\"Search computers\">", html.EscapeString(g.Search))
		w.raw("</form></div></div>")
		gridCard(w, h, g.Body, g.Links, g.Error)
		w.raw("</div>")
		return w.err
	})
	return layout("Computers", h.Theme(), NavComputers, body)
}

// TicketPage renders the ticket grid with its status checkboxes
func TicketPage(h highlight.Highlighter, g TicketGrid) templ.Component {
	checked := make(map[model.TicketStatus]bool, len(g.Statuses))
	for _, s := range g.Statuses {
		checked[s] = true
	}

	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw("<div class=\"card\"><div class=\"card-header\"><h3 class=\"card-title\">Tickets</h3>")
		w.raw("<div class=\"ms-auto\"><form method=\"get\" action=\"/tickets\" class=\"d-flex align-items-center\" id=\"status-filter\">")
		w.raw("<input type=\"hidden\" name=\"action\" value=\"filter\">")
		for _, status := range model.TicketStatuses {
			attr := ""
			if checked[status] {
				attr = " checked"
			}
			w.printf("<label class=\"form-check form-check-inline mb-0\"><input class=\"form-check-input\" type=\"checkbox\" name=\"status\" value=\"%s\"%s><span class=\"form-check-label\">%s</span></label>",
				status, attr, statusLabels[status])
		}
		w.raw("<button type=\"submit\" class=\"btn btn-sm\">Apply</button>")
		w.raw("</form></div></div>")
		gridCard(w, h, g.Body, g.Links, g.Error)
		w.raw("</div>")
		return w.err
	})
	return layout("Tickets", h.Theme(), NavTickets, body)
}

func gridCard(w *writer, h highlight.Highlighter, b table.Body, links Links, failure string) {
	if failure != "" {
		w.raw("<div class=\"card-body\">")
		errorPanel(w, "Failed to load data", failure)
		w.raw("</div>")
		return
	}

	w.raw("<div class=\"table-responsive\">")
	renderTable(w, h, b)
	w.raw("</div>")

	w.raw("<div class=\"card-footer d-flex align-items-center\">")
	w.printf("<p class=\"m-0 text-secondary\" id=\"showing-info\">%s</p>", html.EscapeString(b.Showing))
	w.raw("<ul class=\"pagination m-0 ms-auto\">")
	pageLink(w, "prev", "Prev", links.Prev, b.Prev.Disabled)
	if b.Pages > 0 {
		w.printf("<li class=\"page-item active\"><span class=\"page-link\">%d / %d</span></li>", b.Page, b.Pages)
	}
	pageLink(w, "next", "Next", links.Next, b.Next.Disabled)
	w.raw("</ul></div>")
}

func pageLink(w *writer, id, label, href string, disabled bool) {
	if disabled || href == "" {
		w.printf("<li class=\"page-item disabled\"><a class=\"page-link\" id=\"%s\" tabindex=\"-1\" aria-disabled=\"true\">%s</a></li>", id, label)
		return
	}
	w.printf("<li class=\"page-item\"><a class=\"page-link\" id=\"%s\" href=\"%s\">%s</a></li>", id, html.EscapeString(href), label)
}

func renderTable(w *writer, h highlight.Highlighter, b table.Body) {
	w.raw("<table class=\"table card-table table-vcenter text-nowrap datatable\"><thead><tr>")
	for _, col := range b.Columns {
		w.printf("<th>%s</th>", html.EscapeString(col))
	}
	w.raw("</tr></thead><tbody>")
	for _, row := range b.Rows {
		if row.Empty != "" {
			w.printf("<tr><td colspan=\"%d\" class=\"text-center\">%s</td></tr>", row.Span, html.EscapeString(row.Empty))
			continue
		}
		w.raw("<tr>")
		for _, cell := range row.Cells {
			renderCell(w, h, cell)
		}
		w.raw("</tr>")
	}
	w.raw("</tbody></table>")
}

func renderCell(w *writer, h highlight.Highlighter, c table.Cell) {
	if c.Muted {
		w.raw("<td><span class=\"text-secondary\">")
	} else {
		w.raw("<td>")
	}

	switch {
	case c.Badge != nil:
		w.raw(badge(*c.Badge))
	case c.Href != "":
		w.printf("<a href=\"%s\" class=\"text-reset\">%s</a>", html.EscapeString(c.Href), h.RenderHTML(c.Segments))
	default:
		w.raw(h.RenderHTML(c.Segments))
	}

	if c.Muted {
		w.raw("</span></td>")
	} else {
		w.raw("</td>")
	}
}

// badge renders coloured text for priorities and a filled pill for
// statuses. Unknown values use the neutral secondary pill.
func badge(b table.Badge) string {
	label := html.EscapeString(b.Label)
	switch {
	case b.Style == table.BadgeFilled && b.Color == "secondary":
		return "<span class=\"badge bg-secondary\">" + label + "</span>"
	case b.Style == table.BadgeFilled:
		return "<span class=\"badge text-white bg-" + b.Color + "\">" + label + "</span>"
	case b.Color == "":
		return "<span class=\"bg-transparent fw-bold\">" + label + "</span>"
	default:
		return "<span class=\"bg-transparent text-" + b.Color + " fw-bold\">" + label + "</span>"
	}
}
