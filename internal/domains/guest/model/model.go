package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
)

const EntityName = "guest"

var Columns = []string{"Guest ID", "First Name", "Last Name", "Contact Details"}

type Guest struct {
	GuestID        int    `json:"guest_id" yaml:"guest_id"`
	FirstName      string `json:"first_name" yaml:"first_name"`
	LastName       string `json:"last_name" yaml:"last_name"`
	ContactDetails string `json:"contact_details" yaml:"contact_details"`
	model.Metadata `yaml:",inline"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

func (g Guest) String() string {
	return fmt.Sprintf("Guest ID: %d\nFirst Name: %s\nLast Name: %s\nContact Details: %s",
		g.GuestID, g.FirstName, g.LastName, g.ContactDetails)
}

func (g Guest) Row() []string {
	return []string{strconv.Itoa(g.GuestID), g.FirstName, g.LastName, g.ContactDetails}
}
