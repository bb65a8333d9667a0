package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
	"strings"
)

const EntityName = "client"

var Columns = []string{"Client ID", "Type", "Date", "Time", "Duration", "Venue"}

// Client is an event booking made by a client. It overlaps with Event and is kept
// as its own collection, the two are not linked.
type Client struct {
	ClientID int             `json:"client_id" yaml:"client_id"`
	Type     model.EventType `json:"type" yaml:"type"`
	// Date is YYYY-MM-DD and Time is HH:MM.
	Date string `json:"date" yaml:"date"`
	Time string `json:"time" yaml:"time"`
	// Duration is in hours.
	Duration       float64 `json:"duration" yaml:"duration"`
	Venue          string  `json:"venue" yaml:"venue"`
	model.Metadata `yaml:",inline"`
}

func (c Client) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Client ID: %d\n", c.ClientID)
	fmt.Fprintf(&b, "Type: %s\n", c.Type.Label())
	fmt.Fprintf(&b, "Date: %s\n", c.Date)
	fmt.Fprintf(&b, "Time: %s\n", c.Time)
	fmt.Fprintf(&b, "Duration: %s hours\n", FormatHours(c.Duration))
	fmt.Fprintf(&b, "Venue: %s", c.Venue)

	return b.String()
}

func (c Client) Row() []string {
	return []string{
		strconv.Itoa(c.ClientID),
		c.Type.Label(),
		c.Date,
		c.Time,
		FormatHours(c.Duration),
		c.Venue,
	}
}

// FormatHours prints whole hours without a fraction.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
