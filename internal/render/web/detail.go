package web

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// DetailPage renders one computer with its latest history entries
func DetailPage(h highlight.Highlighter, d table.Detail) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw("<div class=\"page-header d-print-none\"><div class=\"row align-items-center\"><div class=\"col\">")
		w.raw("<div class=\"page-pretitle\"><a href=\"/computers\">Computers</a></div>")
		w.printf("<h2 class=\"page-title\" id=\"hostname\">%s</h2>", html.EscapeString(d.HostName))
		w.printf("<div class=\"text-secondary\" id=\"uuid-label\">%s</div>", html.EscapeString(d.UUIDLabel))
		w.raw("</div></div></div>")

		w.raw("<div class=\"card mb-3\"><div class=\"card-body\"><div class=\"datagrid\">")
		for _, item := range d.Items {
			w.raw("<div class=\"datagrid-item\">")
			w.printf("<div class=\"datagrid-title\">%s</div>", html.EscapeString(item.Title))
			w.raw("<div class=\"datagrid-content\">")
			if item.Icon != nil {
				class := "avatar avatar-xs me-2"
				if item.Icon.Themed {
					class += " icon-themed"
				}
				w.printf("<img src=\"%s\" alt=\"%s\" class=\"%s\">", html.EscapeString(item.Icon.Src), html.EscapeString(item.Icon.Alt), class)
			}
			w.text(item.Value)
			w.raw("</div></div>")
		}
		w.raw("</div></div></div>")

		w.raw("<div class=\"card\"><div class=\"card-header\"><h3 class=\"card-title\">History</h3></div><div class=\"table-responsive\">")
		renderTable(w, h, d.History)
		w.raw("</div></div>")
		return w.err
	})
	return layout(d.HostName, h.Theme(), NavComputers, body)
}

// TicketDetailPage renders a single ticket
func TicketDetailPage(theme highlight.Theme, d table.TicketDetail) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw("<div class=\"page-header d-print-none\"><div class=\"row align-items-center\"><div class=\"col\">")
		w.raw("<div class=\"page-pretitle\"><a href=\"/tickets\">Tickets</a></div>")
		w.printf("<h2 class=\"page-title\" id=\"ticket-title\">%s</h2>", html.EscapeString(d.Title))
		w.raw("</div><div class=\"col-auto\">")
		w.raw(badge(d.Priority))
		w.raw(" ")
		w.raw(badge(d.Status))
		w.raw("</div></div></div>")

		w.raw("<div class=\"card\"><div class=\"card-body\"><div class=\"datagrid\">")
		for _, item := range d.Items {
			w.printf("<div class=\"datagrid-item\"><div class=\"datagrid-title\">%s</div><div class=\"datagrid-content\">%s</div></div>",
				html.EscapeString(item.Title), html.EscapeString(item.Value))
		}
		w.raw("</div></div></div>")
		return w.err
	})
	return layout("Ticket "+d.ID, theme, NavTickets, body)
}
