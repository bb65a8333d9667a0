package dto

import (
	"bestevents/internal/domains/event/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	gModel "bestevents/shared/model"
	"time"
)

type CreateEventRequest struct {
	Name  string           `json:"name" validate:"required,notblank,max=255"`
	Type  gModel.EventType `json:"type" validate:"required,enum"`
	Date  string           `json:"date" validate:"required,datetime=2006-01-02"`
	Venue string           `json:"venue" validate:"required,notblank,max=255"`
	Theme string           `json:"theme" validate:"required,notblank,max=255"`
	// Invoice is drawn from the default range when omitted.
	Invoice *int `json:"invoice" validate:"omitempty,gt=0"`
}

func (c *CreateEventRequest) ToModel(id, invoice int, now time.Time) model.Event {
	if c.Invoice != nil {
		invoice = *c.Invoice
	}

	event := model.Event{
		EventID: id,
		Name:    c.Name,
		Type:    c.Type,
		Date:    c.Date,
		Venue:   c.Venue,
		Theme:   c.Theme,
		Invoice: invoice,
	}
	event.Touch(now)

	return event
}

// UpdateEventRequest changes only the fields that are set.
type UpdateEventRequest struct {
	Name    *string           `json:"name" validate:"omitempty,notblank,max=255"`
	Type    *gModel.EventType `json:"type" validate:"omitempty,enum"`
	Date    *string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Venue   *string           `json:"venue" validate:"omitempty,notblank,max=255"`
	Theme   *string           `json:"theme" validate:"omitempty,notblank,max=255"`
	Invoice *int              `json:"invoice" validate:"omitempty,gt=0"`
}

func (u *UpdateEventRequest) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.Date == nil && u.Venue == nil && u.Theme == nil && u.Invoice == nil
}

func (u *UpdateEventRequest) Apply(event *model.Event, now time.Time) {
	if u.Name != nil {
		event.Name = *u.Name
	}

	if u.Type != nil {
		event.Type = *u.Type
	}

	if u.Date != nil {
		event.Date = *u.Date
	}

	if u.Venue != nil {
		event.Venue = *u.Venue
	}

	if u.Theme != nil {
		event.Theme = *u.Theme
	}

	if u.Invoice != nil {
		event.Invoice = *u.Invoice
	}

	event.Touch(now)
}

type EventResponse struct {
	EventID   int    `json:"event_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	Theme     string `json:"theme"`
	Invoice   int    `json:"invoice"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.EventID = model.EventID
	r.Name = model.Name
	r.Type = string(model.Type)
	r.TypeLabel = model.Type.Label()
	r.Date = model.Date
	r.Venue = model.Venue
	r.Theme = model.Theme
	r.Invoice = model.Invoice
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
