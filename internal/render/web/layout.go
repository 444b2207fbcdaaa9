// Package web renders the browser console as templ components.
package web

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
)

const stylesheet = "https://cdn.jsdelivr.net/npm/@tabler/core@1.0.0/dist/css/tabler.min.css"

// writer keeps the first write error so markup can be emitted without
// checking every call
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *writer) text(s string) {
	w.raw(html.EscapeString(s))
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Nav marks which top-level section is active
type Nav int

const (
	NavNone Nav = iota
	NavComputers
	NavTickets
)

func layout(title string, theme highlight.Theme, nav Nav, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.printf("<!doctype html><html lang=\"en\" data-bs-theme=\"%s\"><head>", theme)
		w.raw("<meta charset=\"utf-8\">")
		w.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		w.printf("<title>%s</title>", html.EscapeString(title))
		w.printf("<link rel=\"stylesheet\" href=\"%s\">", stylesheet)
		w.raw("<style>[data-bs-theme=dark] .icon-themed{filter:invert(1);}</style>")
		w.raw("</head><body><div class=\"page\">")
		navbar(w, theme, nav)
		w.raw("<div class=\"page-wrapper\"><div class=\"page-body\"><div class=\"container-xl\">")
		w.component(ctx, body)
		w.raw("</div></div></div></div></body></html>")
		return w.err
	})
}

func navbar(w *writer, theme highlight.Theme, nav Nav) {
	w.raw("<header class=\"navbar navbar-expand-md d-print-none\"><div class=\"container-xl\">")
	w.raw("<a class=\"navbar-brand\" href=\"/computers\">Inventory</a>")
	w.raw("<ul class=\"navbar-nav\">")
	navItem(w, "/computers", "Computers", nav == NavComputers)
	navItem(w, "/tickets", "Tickets", nav == NavTickets)
	w.raw("</ul><div class=\"navbar-nav flex-row order-md-last\">")
	if theme == highlight.Dark {
		w.raw("<a class=\"nav-link px-0\" href=\"/theme/light\" title=\"Enable light mode\">Light mode</a>")
	} else {
		w.raw("<a class=\"nav-link px-0\" href=\"/theme/dark\" title=\"Enable dark mode\">Dark mode</a>")
	}
	w.raw("<form method=\"post\" action=\"/logout\" class=\"ms-3\"><button type=\"submit\" class=\"btn btn-ghost-secondary\">Logout</button></form>")
	w.raw("</div></div></header>")
}

func navItem(w *writer, href, label string, active bool) {
	class := "nav-item"
	if active {
		class += " active"
	}
	w.printf("<li class=\"%s\"><a class=\"nav-link\" href=\"%s\">%s</a></li>", class, href, label)
}

// ForbiddenPage is shown when the backend refused a request with a 403
func ForbiddenPage(theme highlight.Theme, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw("<div class=\"empty\"><div class=\"empty-header\">403</div>")
		w.printf("<p class=\"empty-title\">%s</p>", html.EscapeString(message))
		w.raw("<div class=\"empty-action\"><a href=\"/computers\" class=\"btn btn-primary\">Take me home</a></div></div>")
		return w.err
	})
	return layout("403 Forbidden", theme, NavNone, body)
}

// ErrorPage is shown when the backend could not be reached or answered
// with an unexpected error
func ErrorPage(theme highlight.Theme, title, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		errorPanel(w, title, message)
		return w.err
	})
	return layout(title, theme, NavNone, body)
}

func errorPanel(w *writer, title, message string) {
	w.raw("<div class=\"alert alert-danger\" role=\"alert\">")
	w.printf("<h4 class=\"alert-title\">%s</h4>", html.EscapeString(title))
	w.printf("<div class=\"text-secondary\">%s</div></div>", html.EscapeString(message))
}
