package model

// TicketStatus is the workflow state of a helpdesk ticket
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusClosed     TicketStatus = "closed"
	StatusInProgress TicketStatus = "in-progress"
	StatusAwaiting   TicketStatus = "awaiting"
)

// TicketStatuses lists every status in the order the filter boxes appear
var TicketStatuses = []TicketStatus{StatusOpen, StatusClosed, StatusInProgress, StatusAwaiting}

// ParseTicketStatus returns the status named s and whether it is known
func ParseTicketStatus(s string) (TicketStatus, bool) {
	for _, status := range TicketStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Ticket is one row of the ticket list. Priority is "1" (very high)
// through "4" (low).
type Ticket struct {
	ID        Field `json:"id"`
	Title     Field `json:"title"`
	CreatedAt Field `json:"created_at"`
	CreatedBy Field `json:"created_by"`
	Priority  Field `json:"priority"`
	Status    Field `json:"status"`
}

// TicketList is the result of GET /api/v1/tickets/
type TicketList struct {
	Count   int      `json:"count"`
	Tickets []Ticket `json:"tickets"`
}

// TicketDetail is the result of GET /api/v1/tickets/{id}
type TicketDetail struct {
	Ticket Ticket `json:"ticket"`
}
