package dto

import (
	"bestevents/internal/domains/guest/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	"time"
)

type CreateGuestRequest struct {
	FirstName      string `json:"first_name" validate:"required,notblank,max=255"`
	LastName       string `json:"last_name" validate:"required,notblank,max=255"`
	ContactDetails string `json:"contact_details" validate:"required,notblank,max=255"`
}

func (c *CreateGuestRequest) ToModel(id int, now time.Time) model.Guest {
	guest := model.Guest{
		GuestID:        id,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		ContactDetails: c.ContactDetails,
	}
	guest.Touch(now)

	return guest
}

// UpdateGuestRequest changes only the fields that are set.
type UpdateGuestRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,notblank,max=255"`
	LastName       *string `json:"last_name" validate:"omitempty,notblank,max=255"`
	ContactDetails *string `json:"contact_details" validate:"omitempty,notblank,max=255"`
}

func (u *UpdateGuestRequest) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.ContactDetails == nil
}

func (u *UpdateGuestRequest) Apply(guest *model.Guest, now time.Time) {
	if u.FirstName != nil {
		guest.FirstName = *u.FirstName
	}

	if u.LastName != nil {
		guest.LastName = *u.LastName
	}

	if u.ContactDetails != nil {
		guest.ContactDetails = *u.ContactDetails
	}

	guest.Touch(now)
}

type GuestResponse struct {
	GuestID        int    `json:"guest_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ContactDetails string `json:"contact_details"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.GuestID = model.GuestID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.ContactDetails = model.ContactDetails
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
