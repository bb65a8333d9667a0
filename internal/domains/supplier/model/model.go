package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
)

const EntityName = "supplier"

var Columns = []string{"Supplier ID", "Name", "Service Type", "Contact Details"}

type Supplier struct {
	SupplierID     int         `json:"supplier_id" yaml:"supplier_id"`
	Name           string      `json:"name" yaml:"name"`
	ServiceType    ServiceType `json:"service_type" yaml:"service_type"`
	ContactDetails string      `json:"contact_details" yaml:"contact_details"`
	model.Metadata `yaml:",inline"`
}

func (s Supplier) String() string {
	return fmt.Sprintf("Supplier ID: %d\nName: %s\nService Type: %s\nContact Details: %s",
		s.SupplierID, s.Name, s.ServiceType.Label(), s.ContactDetails)
}

func (s Supplier) Row() []string {
	return []string{strconv.Itoa(s.SupplierID), s.Name, s.ServiceType.Label(), s.ContactDetails}
}
