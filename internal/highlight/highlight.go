// Package highlight marks the parts of a field that match the active
// search query.
package highlight

import (
	"errors"
	"html"
	"regexp"
	"strings"
)

// Theme is the colour scheme the console is displayed in
type Theme int

const (
	Light Theme = iota
	Dark
)

// ThemeCookie is where the browser keeps the theme preference
const ThemeCookie = "tablerTheme"

// ParseTheme maps the stored preference to a Theme. Only "dark" selects
// the dark theme; anything else, including no preference, is light.
func ParseTheme(s string) Theme {
	if s == "dark" {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

const (
	DefaultDarkColor  = "#f76707"
	DefaultLightColor = "#f59f00"
)

// Config selects how matches are presented. On a dark theme matches are
// recoloured, on a light theme they get a background.
type Config struct {
	Theme      Theme
	DarkColor  string
	LightColor string
}

// Segment is a run of field text that either matched the query or not
type Segment struct {
	Text  string
	Match bool
}

var errEmptyQuery = errors.New("highlight: empty query")

var macPattern = regexp.MustCompile(`^([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}$`)

// IsMAC reports whether s is six colon-separated hex octets
func IsMAC(s string) bool {
	return macPattern.MatchString(s)
}

// Split breaks text into matching and non-matching segments. Matching is
// case-insensitive. When text is a MAC address and the query has no
// colon, colons in the text are ignored while matching. An empty query
// yields text unchanged as a single segment.
func Split(text, query string) []Segment {
	return Apply([]Segment{{Text: text}}, query)
}

// Apply highlights query inside the segments that have not matched yet.
// Segments that already matched are left alone, so applying the same
// query twice gives the same result as applying it once.
func Apply(segments []Segment, query string) []Segment {
	if query == "" {
		return segments
	}

	var full strings.Builder
	for _, seg := range segments {
		full.WriteString(seg.Text)
	}
	re, err := compile(full.String(), query)
	if err != nil {
		return segments
	}

	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Match {
			out = append(out, seg)
			continue
		}
		out = append(out, splitOne(seg.Text, re)...)
	}
	return out
}

// compile builds the match pattern for query. Bytes that are not valid
// UTF-8 are dropped since the regexp syntax rejects them; a query left
// empty by that matches nothing.
func compile(text, query string) (*regexp.Regexp, error) {
	query = strings.ToValidUTF8(query, "")
	if query == "" {
		return nil, errEmptyQuery
	}
	var pattern string
	if IsMAC(text) && !strings.Contains(query, ":") {
		parts := make([]string, 0, len(query))
		for _, r := range query {
			parts = append(parts, regexp.QuoteMeta(string(r)))
		}
		pattern = strings.Join(parts, ":?")
	} else {
		pattern = regexp.QuoteMeta(query)
	}
	return regexp.Compile("(?i)" + pattern)
}

func splitOne(text string, re *regexp.Regexp) []Segment {
	var out []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		if loc[0] > last {
			out = append(out, Segment{Text: text[last:loc[0]]})
		}
		out = append(out, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) || len(out) == 0 {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

// Highlighter renders segments for one theme
type Highlighter struct {
	cfg Config
}

// New returns a Highlighter, filling in default colours
func New(cfg Config) Highlighter {
	if cfg.DarkColor == "" {
		cfg.DarkColor = DefaultDarkColor
	}
	if cfg.LightColor == "" {
		cfg.LightColor = DefaultLightColor
	}
	return Highlighter{cfg: cfg}
}

// WithTheme returns a copy of h for another theme
func (h Highlighter) WithTheme(theme Theme) Highlighter {
	h.cfg.Theme = theme
	return h
}

// Theme is the theme h renders for
func (h Highlighter) Theme() Theme {
	return h.cfg.Theme
}

// Color is the highlight colour for the current theme
func (h Highlighter) Color() string {
	if h.cfg.Theme == Dark {
		return h.cfg.DarkColor
	}
	return h.cfg.LightColor
}

// SpanStyle is the inline style of a highlight span
func (h Highlighter) SpanStyle() string {
	if h.cfg.Theme == Dark {
		return "color: " + h.cfg.DarkColor + ";"
	}
	return "background-color: " + h.cfg.LightColor + ";"
}

// RenderHTML escapes the segments and wraps matches in a styled span
func (h Highlighter) RenderHTML(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Match {
			b.WriteString(`<span style="`)
			b.WriteString(html.EscapeString(h.SpanStyle()))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(seg.Text))
			b.WriteString(`</span>`)
			continue
		}
		b.WriteString(html.EscapeString(seg.Text))
	}
	return b.String()
}

// HTML highlights query in text and returns escaped markup
func (h Highlighter) HTML(text, query string) string {
	return h.RenderHTML(Split(text, query))
}
