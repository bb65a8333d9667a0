package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
	"strings"
)

const EntityName = "venue"

var Columns = []string{"Venue ID", "Name", "Address", "Contact Details", "Min Guests", "Max Guests"}

// Venue is a location events are held at. MinGuests never exceeds MaxGuests.
type Venue struct {
	VenueID        int    `json:"venue_id" yaml:"venue_id"`
	Name           string `json:"name" yaml:"name"`
	Address        string `json:"address" yaml:"address"`
	ContactDetails string `json:"contact_details" yaml:"contact_details"`
	MinGuests      int    `json:"min_guests" yaml:"min_guests"`
	MaxGuests      int    `json:"max_guests" yaml:"max_guests"`
	model.Metadata `yaml:",inline"`
}

// Fits reports whether a party of the given size is within the venue's guest range.
func (v Venue) Fits(guests int) bool {
	return guests >= v.MinGuests && guests <= v.MaxGuests
}

func (v Venue) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Venue ID: %d\n", v.VenueID)
	fmt.Fprintf(&b, "Name: %s\n", v.Name)
	fmt.Fprintf(&b, "Address: %s\n", v.Address)
	fmt.Fprintf(&b, "Contact Details: %s\n", v.ContactDetails)
	fmt.Fprintf(&b, "Min Guests: %d\n", v.MinGuests)
	fmt.Fprintf(&b, "Max Guests: %d", v.MaxGuests)

	return b.String()
}

func (v Venue) Row() []string {
	return []string{
		strconv.Itoa(v.VenueID),
		v.Name,
		v.Address,
		v.ContactDetails,
		strconv.Itoa(v.MinGuests),
		strconv.Itoa(v.MaxGuests),
	}
}
