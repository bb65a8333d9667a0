package model

import "bestevents/shared/enum"

type ServiceType string

const (
	ServiceTypeCatering      ServiceType = "catering"
	ServiceTypeCleaning      ServiceType = "cleaning"
	ServiceTypeDecorations   ServiceType = "decorations"
	ServiceTypeEntertainment ServiceType = "entertainment"
	ServiceTypeFurniture     ServiceType = "furniture"
)

var ServiceTypes = enum.NewTable(
	enum.Member[ServiceType]{Code: ServiceTypeCatering, Label: "Catering Company"},
	enum.Member[ServiceType]{Code: ServiceTypeCleaning, Label: "Cleaning Company"},
	enum.Member[ServiceType]{Code: ServiceTypeDecorations, Label: "Decorations Company"},
	enum.Member[ServiceType]{Code: ServiceTypeEntertainment, Label: "Entertainment Company"},
	enum.Member[ServiceType]{Code: ServiceTypeFurniture, Label: "Furniture Supply Company"},
)

func (s ServiceType) IsValid() bool {
	return ServiceTypes.Contains(s)
}

func (s ServiceType) Label() string {
	return ServiceTypes.Label(s)
}

func (s *ServiceType) UnmarshalText(text []byte) error {
	*s, _ = ServiceTypes.Parse(string(text))

	return nil
}
