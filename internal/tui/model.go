// Package tui is the terminal console: the same computer and ticket grids
// as the browser console, driven from the keyboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/term"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// Tab is the grid currently shown
type Tab int

const (
	TabComputers Tab = iota
	TabTickets
)

func (t Tab) String() string {
	if t == TabTickets {
		return "Tickets"
	}
	return "Computers"
}

// computersMsg and ticketsMsg carry the result of one dispatch back into
// the update loop
type computersMsg struct {
	snap grid.Snapshot[model.Computer]
	err  error
}

type ticketsMsg struct {
	snap grid.Snapshot[model.Ticket]
	err  error
}

// Model is the bubbletea model of the console
type Model struct {
	ctx       context.Context
	computers *grid.Controller[model.Computer]
	tickets   *grid.Controller[model.Ticket]
	renderer  term.Renderer

	active    Tab
	search    textinput.Model
	searching bool

	computerBody table.Body
	ticketBody   table.Body
	computerErr  error
	ticketErr    error
	pending      map[Tab]bool
}

// New returns a console over the two sources. Nothing is fetched until
// Init runs.
func New(ctx context.Context, computers grid.Source[model.Computer], tickets grid.Source[model.Ticket], renderer term.Renderer, limit int) Model {
	search := textinput.New()
	search.Placeholder = "hostname, MAC, IPv4, serial..."
	search.Prompt = "/ "
	search.CharLimit = 256

	return Model{
		ctx:       ctx,
		computers: grid.NewController(computers, grid.New(grid.Computers, limit)),
		tickets:   grid.NewController(tickets, grid.New(grid.Tickets, limit)),
		renderer:  renderer,
		search:    search,
		pending:   map[Tab]bool{},
	}
}

// Init loads both grids
func (m Model) Init() tea.Cmd {
	m.pending[TabComputers] = true
	m.pending[TabTickets] = true
	return tea.Batch(
		dispatchComputers(m.ctx, m.computers, grid.Action{Type: grid.ActionLoad}),
		dispatchTickets(m.ctx, m.tickets, grid.Action{Type: grid.ActionLoad}),
	)
}

func dispatchComputers(ctx context.Context, c *grid.Controller[model.Computer], a grid.Action) tea.Cmd {
	return func() tea.Msg {
		snap, err := c.Dispatch(ctx, a)
		return computersMsg{snap: snap, err: err}
	}
}

func dispatchTickets(ctx context.Context, c *grid.Controller[model.Ticket], a grid.Action) tea.Cmd {
	return func() tea.Msg {
		snap, err := c.Dispatch(ctx, a)
		return ticketsMsg{snap: snap, err: err}
	}
}

// dispatch sends a to the active grid
func (m *Model) dispatch(a grid.Action) tea.Cmd {
	m.pending[m.active] = true
	if m.active == TabTickets {
		return dispatchTickets(m.ctx, m.tickets, a)
	}
	return dispatchComputers(m.ctx, m.computers, a)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case computersMsg:
		if errors.Is(msg.err, grid.ErrStale) {
			return m, nil
		}
		m.pending[TabComputers] = false
		m.computerErr = msg.err
		if msg.err == nil {
			m.computerBody = table.ComputerBody(msg.snap)
		}
		return m, nil

	case ticketsMsg:
		if errors.Is(msg.err, grid.ErrStale) {
			return m, nil
		}
		m.pending[TabTickets] = false
		m.ticketErr = msg.err
		if msg.err == nil {
			m.ticketBody = table.TicketBody(msg.snap)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.computers.State().Filter.Search)
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, m.dispatch(grid.Action{Type: grid.ActionSearch, Search: m.search.Value()})
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.active == TabComputers {
			m.active = TabTickets
		} else {
			m.active = TabComputers
		}
		return m, nil
	case "/":
		if m.active != TabComputers {
			return m, nil
		}
		m.searching = true
		return m, m.search.Focus()
	case "n":
		return m, m.dispatch(grid.Action{Type: grid.ActionNext})
	case "p":
		return m, m.dispatch(grid.Action{Type: grid.ActionPrev})
	case "r":
		return m, m.dispatch(grid.Action{Type: grid.ActionLoad})
	case "1", "2", "3", "4":
		if m.active != TabTickets {
			return m, nil
		}
		status := model.TicketStatuses[key[0]-'1']
		return m, m.dispatch(grid.Action{Type: grid.ActionToggleStatus, Status: status})
	}
	return m, nil
}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#d63939"))
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	for _, tab := range []Tab{TabComputers, TabTickets} {
		style := inactiveTabStyle
		if tab == m.active {
			style = activeTabStyle
		}
		b.WriteString(style.Render(tab.String()))
	}
	b.WriteString("\n\n")

	if m.active == TabComputers {
		if m.searching || m.search.Value() != "" {
			b.WriteString(m.search.View())
			b.WriteString("\n")
		}
		b.WriteString(m.gridView(m.computerBody, m.computerErr))
	} else {
		b.WriteString(m.statusLine())
		b.WriteString("\n")
		b.WriteString(m.gridView(m.ticketBody, m.ticketErr))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

// gridView renders the last good body. A failed fetch keeps those rows on
// screen with the error under them.
func (m Model) gridView(body table.Body, err error) string {
	if forbidden, ok := repository.AsForbidden(err); ok {
		return errorStyle.Render("Not authorized: " + forbidden.Name)
	}
	if body.Columns == nil {
		if err != nil {
			return errorStyle.Render("Failed to load data: " + err.Error())
		}
		return "Loading..."
	}
	out := m.renderer.Body(body)
	switch {
	case err != nil:
		out += "\n" + errorStyle.Render("Failed to load data: "+err.Error())
	case m.pending[m.active]:
		out += "\n" + helpStyle.Render("Loading...")
	}
	return out
}

func (m Model) statusLine() string {
	filter := m.tickets.State().Filter
	parts := make([]string, 0, len(model.TicketStatuses))
	for i, status := range model.TicketStatuses {
		mark := " "
		if filter.HasStatus(status) {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s] %d %s", mark, i+1, status))
	}
	return strings.Join(parts, "  ")
}

func (m Model) help() string {
	if m.searching {
		return "enter search • esc cancel"
	}
	if m.active == TabTickets {
		return "1-4 toggle status • n/p page • r reload • tab computers • q quit"
	}
	return "/ search • n/p page • r reload • tab tickets • q quit"
}
