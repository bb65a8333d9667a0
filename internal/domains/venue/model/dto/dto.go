package dto

import (
	"bestevents/internal/domains/venue/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	"fmt"
	"time"
)

type CreateVenueRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=255"`
	Address        string `json:"address" validate:"required,notblank,max=255"`
	ContactDetails string `json:"contact_details" validate:"required,notblank,max=255"`
	MinGuests      int    `json:"min_guests" validate:"gte=0,ltefield=MaxGuests"`
	MaxGuests      int    `json:"max_guests" validate:"required,gte=1"`
}

func (c *CreateVenueRequest) ToModel(id int, now time.Time) model.Venue {
	venue := model.Venue{
		VenueID:        id,
		Name:           c.Name,
		Address:        c.Address,
		ContactDetails: c.ContactDetails,
		MinGuests:      c.MinGuests,
		MaxGuests:      c.MaxGuests,
	}
	venue.Touch(now)

	return venue
}

// UpdateVenueRequest changes only the fields that are set. The guest range is
// checked against the merged record by Apply.
type UpdateVenueRequest struct {
	Name           *string `json:"name" validate:"omitempty,notblank,max=255"`
	Address        *string `json:"address" validate:"omitempty,notblank,max=255"`
	ContactDetails *string `json:"contact_details" validate:"omitempty,notblank,max=255"`
	MinGuests      *int    `json:"min_guests" validate:"omitempty,gte=0"`
	MaxGuests      *int    `json:"max_guests" validate:"omitempty,gte=1"`
}

func (u *UpdateVenueRequest) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.ContactDetails == nil && u.MinGuests == nil && u.MaxGuests == nil
}

// Apply merges the request into venue. It fails without touching venue when the
// merged guest range would be inverted.
func (u *UpdateVenueRequest) Apply(venue *model.Venue, now time.Time) error {
	minGuests, maxGuests := venue.MinGuests, venue.MaxGuests
	if u.MinGuests != nil {
		minGuests = *u.MinGuests
	}

	if u.MaxGuests != nil {
		maxGuests = *u.MaxGuests
	}

	if minGuests > maxGuests {
		return failure.BadRequest(fmt.Errorf("min_guests must be less than or equal to max_guests (%d > %d)", minGuests, maxGuests)) //nolint:wrapcheck
	}

	if u.Name != nil {
		venue.Name = *u.Name
	}

	if u.Address != nil {
		venue.Address = *u.Address
	}

	if u.ContactDetails != nil {
		venue.ContactDetails = *u.ContactDetails
	}

	venue.MinGuests, venue.MaxGuests = minGuests, maxGuests
	venue.Touch(now)

	return nil
}

type VenueResponse struct {
	VenueID        int    `json:"venue_id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	ContactDetails string `json:"contact_details"`
	MinGuests      int    `json:"min_guests"`
	MaxGuests      int    `json:"max_guests"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(model model.Venue) {
	r.VenueID = model.VenueID
	r.Name = model.Name
	r.Address = model.Address
	r.ContactDetails = model.ContactDetails
	r.MinGuests = model.MinGuests
	r.MaxGuests = model.MaxGuests
	r.Metadata.FromModel(model.Metadata)
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}
