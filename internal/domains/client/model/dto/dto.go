package dto

import (
	"bestevents/internal/domains/client/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	gModel "bestevents/shared/model"
	"time"
)

type CreateClientRequest struct {
	Type     gModel.EventType `json:"type" validate:"required,enum"`
	Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string           `json:"time" validate:"required,datetime=15:04"`
	Duration float64          `json:"duration" validate:"required,gt=0,lte=168"`
	Venue    string           `json:"venue" validate:"required,notblank,max=255"`
}

func (c *CreateClientRequest) ToModel(id int, now time.Time) model.Client {
	client := model.Client{
		ClientID: id,
		Type:     c.Type,
		Date:     c.Date,
		Time:     c.Time,
		Duration: c.Duration,
		Venue:    c.Venue,
	}
	client.Touch(now)

	return client
}

// UpdateClientRequest changes only the fields that are set.
type UpdateClientRequest struct {
	Type     *gModel.EventType `json:"type" validate:"omitempty,enum"`
	Date     *string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     *string           `json:"time" validate:"omitempty,datetime=15:04"`
	Duration *float64          `json:"duration" validate:"omitempty,gt=0,lte=168"`
	Venue    *string           `json:"venue" validate:"omitempty,notblank,max=255"`
}

func (u *UpdateClientRequest) IsEmpty() bool {
	return u.Type == nil && u.Date == nil && u.Time == nil && u.Duration == nil && u.Venue == nil
}

func (u *UpdateClientRequest) Apply(client *model.Client, now time.Time) {
	if u.Type != nil {
		client.Type = *u.Type
	}

	if u.Date != nil {
		client.Date = *u.Date
	}

	if u.Time != nil {
		client.Time = *u.Time
	}

	if u.Duration != nil {
		client.Duration = *u.Duration
	}

	if u.Venue != nil {
		client.Venue = *u.Venue
	}

	client.Touch(now)
}

type ClientResponse struct {
	ClientID  int     `json:"client_id"`
	Type      string  `json:"type"`
	TypeLabel string  `json:"type_label"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Duration  float64 `json:"duration"`
	Venue     string  `json:"venue"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ClientID = model.ClientID
	r.Type = string(model.Type)
	r.TypeLabel = model.Type.Label()
	r.Date = model.Date
	r.Time = model.Time
	r.Duration = model.Duration
	r.Venue = model.Venue
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
