package table

import (
	"net/url"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// ComputerColumns are the computer grid headers in display order
var ComputerColumns = []string{
	"UUID Label",
	"Hostname",
	"MAC Address",
	"IPv4 Address",
	"Security Seal",
	"Network Adapter",
	"PC Serial Number",
}

// ComputerRow maps one computer to its cells. Every text cell is
// highlighted with query; an empty query leaves the text as is.
func ComputerRow(c model.Computer, query string) Row {
	host := textCell(c.HostName, query)
	host.Href = "/computers/" + url.PathEscape(c.UUIDLabel.Raw())

	label := textCell(c.UUIDLabel, query)
	label.Muted = true

	return Row{Cells: []Cell{
		label,
		host,
		textCell(c.MACAddress, query),
		textCell(c.IPv4Address, query),
		textCell(c.SecSeal, query),
		textCell(c.NetworkAdapter, query),
		textCell(c.PCSerialNumber, query),
	}}
}

// ComputerBody builds the computer grid for a fetched snapshot
func ComputerBody(snap grid.Snapshot[model.Computer]) Body {
	filter := snap.State.Filter

	rows := make([]Row, 0, len(snap.Records))
	for _, c := range snap.Records {
		rows = append(rows, ComputerRow(c, filter.Search))
	}

	noun, empty := "computers", "No computers found"
	if filter.IsSearching() {
		noun, empty = "search results", "No search results"
	}
	return newBody(ComputerColumns, snap.State.Page, rows, snap.Returned(), noun, empty)
}
