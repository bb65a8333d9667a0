package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
	"strings"
)

const (
	EntityName = "event"

	// InvoiceMin and InvoiceMax bound the invoice number assigned when none is given.
	InvoiceMin = 5000
	InvoiceMax = 25000
)

var Columns = []string{"Event ID", "Name", "Type", "Date", "Venue", "Theme", "Invoice"}

type Event struct {
	EventID int             `json:"event_id" yaml:"event_id"`
	Name    string          `json:"name" yaml:"name"`
	Type    model.EventType `json:"type" yaml:"type"`
	// Date is YYYY-MM-DD.
	Date           string `json:"date" yaml:"date"`
	Venue          string `json:"venue" yaml:"venue"`
	Theme          string `json:"theme" yaml:"theme"`
	Invoice        int    `json:"invoice" yaml:"invoice"`
	model.Metadata `yaml:",inline"`
}

func (e Event) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Event ID: %d\n", e.EventID)
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Type: %s\n", e.Type.Label())
	fmt.Fprintf(&b, "Date: %s\n", e.Date)
	fmt.Fprintf(&b, "Venue: %s\n", e.Venue)
	fmt.Fprintf(&b, "Theme: %s\n", e.Theme)
	fmt.Fprintf(&b, "Invoice: %d", e.Invoice)

	return b.String()
}

func (e Event) Row() []string {
	return []string{
		strconv.Itoa(e.EventID),
		e.Name,
		e.Type.Label(),
		e.Date,
		e.Venue,
		e.Theme,
		strconv.Itoa(e.Invoice),
	}
}
