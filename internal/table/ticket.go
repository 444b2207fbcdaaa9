package table

import (
	"net/url"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// TicketColumns are the ticket grid headers in display order
var TicketColumns = []string{"ID", "Title", "Created At", "Priority", "Status"}

var unknownBadge = Badge{Label: "Unknown", Color: "secondary", Style: BadgeFilled}

var priorityBadges = map[string]Badge{
	"1": {Label: "Very High", Color: "red", Style: BadgeText},
	"2": {Label: "High", Color: "orange", Style: BadgeText},
	"3": {Label: "Normal", Style: BadgeText},
	"4": {Label: "Low", Color: "azure", Style: BadgeText},
}

var statusBadges = map[model.TicketStatus]Badge{
	model.StatusOpen:       {Label: "Open", Color: "purple", Style: BadgeFilled},
	model.StatusInProgress: {Label: "In Progress", Color: "blue", Style: BadgeFilled},
	model.StatusAwaiting:   {Label: "Awaiting Reply", Color: "teal", Style: BadgeFilled},
	model.StatusClosed:     {Label: "Closed", Color: "red", Style: BadgeFilled},
}

// PriorityBadge maps "1".."4" to a badge; anything else is Unknown
func PriorityBadge(priority model.Field) Badge {
	if b, ok := priorityBadges[priority.Raw()]; ok && priority.Valid() {
		return b
	}
	return unknownBadge
}

// StatusBadge maps a ticket status to a badge; anything else is Unknown
func StatusBadge(status model.Field) Badge {
	if b, ok := statusBadges[model.TicketStatus(status.Raw())]; ok && status.Valid() {
		return b
	}
	return unknownBadge
}

// TicketRow maps one ticket to its cells
func TicketRow(t model.Ticket) Row {
	title := textCell(t.Title, "")
	title.Href = "/tickets/" + url.PathEscape(t.ID.Raw())

	priority := PriorityBadge(t.Priority)
	status := StatusBadge(t.Status)

	return Row{Cells: []Cell{
		textCell(t.ID, ""),
		title,
		textCell(t.CreatedAt, ""),
		{Badge: &priority},
		{Badge: &status},
	}}
}

// TicketBody builds the ticket grid for a fetched snapshot
func TicketBody(snap grid.Snapshot[model.Ticket]) Body {
	rows := make([]Row, 0, len(snap.Records))
	for _, t := range snap.Records {
		rows = append(rows, TicketRow(t))
	}
	return newBody(TicketColumns, snap.State.Page, rows, snap.Returned(), "tickets", "No tickets found")
}
