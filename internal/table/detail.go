package table

import (
	"strings"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// HistoryColumns are the headers of a computer's job history
var HistoryColumns = []string{"UUID", "Created By", "Created At", "Reason", "Signed By", "Signed At"}

// DetailItem is one title/value pair of the computer datagrid
type DetailItem struct {
	Title string
	Value string
	Icon  *Icon
}

// Icon is an image shown next to a recognised value
type Icon struct {
	Src string
	Alt string
	// Themed icons are inverted on the dark theme
	Themed bool
}

// Detail is the single-computer view
type Detail struct {
	HostName  string
	UUIDLabel string
	Items     []DetailItem
	History   Body
}

// ComputerDetail maps the label endpoint result to the detail view.
// Missing values render as the placeholder.
func ComputerDetail(d model.ComputerDetail) Detail {
	c := d.Computer
	items := []DetailItem{
		{Title: "IPv4 Address", Value: c.IPv4Address.String()},
		{Title: "MAC Address", Value: c.MACAddress.String()},
		{Title: "Make", Value: c.Make.String()},
		{Title: "Model", Value: c.Model.String()},
		{Title: "PC Serial Number", Value: c.PCSerialNumber.String()},
		{Title: "Network", Value: c.Network.String()},
		{Title: "Network Adapter", Value: c.NetworkAdapter.String(), Icon: adapterIcon(c.NetworkAdapter)},
		{Title: "Network Adapter Serial Number", Value: c.NetAdapterSerialNumber.String()},
		{Title: "Operating System", Value: c.OS.String(), Icon: osIcon(c.OS)},
		{Title: "Security Seal", Value: c.SecSeal.String()},
		{Title: "User", Value: c.UserName.String()},
		{Title: "UUID Label", Value: c.UUIDLabel.String()},
		{Title: "YAT", Value: c.YAT.String()},
		{Title: "Subdivision", Value: c.OfficeLocation.String()},
		{Title: "Office Number", Value: c.OfficeNumber.String()},
		{Title: "Telephone", Value: c.Telephone.String()},
	}

	var rows []Row
	if d.Entries.Count > 0 {
		for _, e := range d.Entries.History {
			uuid := textCell(e.UUID, "")
			uuid.Muted = true
			rows = append(rows, Row{Cells: []Cell{
				uuid,
				textCell(e.CreatedBy, ""),
				textCell(e.CreatedAt, ""),
				textCell(e.Reason, ""),
				textCell(e.SignedBy, ""),
				textCell(e.SignedAt, ""),
			}})
		}
	}
	if len(rows) == 0 {
		rows = []Row{{Empty: "No history found", Span: len(HistoryColumns)}}
	}

	return Detail{
		HostName:  c.HostName.String(),
		UUIDLabel: c.UUIDLabel.String(),
		Items:     items,
		History:   Body{Columns: HistoryColumns, Rows: rows},
	}
}

func osIcon(os model.Field) *Icon {
	switch strings.ToLower(os.Raw()) {
	case "linux":
		return &Icon{Src: "/static/icons/ubuntu.svg", Alt: "Linux/Ubuntu"}
	case "windows":
		return &Icon{Src: "/static/icons/windows.svg", Alt: "Windows"}
	}
	return nil
}

func adapterIcon(adapter model.Field) *Icon {
	switch strings.ToLower(adapter.Raw()) {
	case "ethernet":
		return &Icon{Src: "/static/icons/ethernet.svg", Alt: "Ethernet", Themed: true}
	case "optical":
		return &Icon{Src: "/static/icons/optical.svg", Alt: "Optical", Themed: true}
	}
	return nil
}

// TicketDetail is the single-ticket view
type TicketDetail struct {
	ID       string
	Title    string
	Items    []DetailItem
	Priority Badge
	Status   Badge
}

// TicketView maps the ticket endpoint result to the detail view
func TicketView(t model.Ticket) TicketDetail {
	return TicketDetail{
		ID:    t.ID.String(),
		Title: t.Title.String(),
		Items: []DetailItem{
			{Title: "ID", Value: t.ID.String()},
			{Title: "Created At", Value: t.CreatedAt.String()},
			{Title: "Created By", Value: t.CreatedBy.String()},
		},
		Priority: PriorityBadge(t.Priority),
		Status:   StatusBadge(t.Status),
	}
}
