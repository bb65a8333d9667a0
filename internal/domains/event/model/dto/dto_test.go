package dto_test

import (
	"bestevents/internal/domains/event/model"
	"bestevents/internal/domains/event/model/dto"
	gModel "bestevents/shared/model"
	"bestevents/shared/validator"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func validRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Name:  "Annual Dinner",
		Type:  gModel.EventTypeCorporate,
		Date:  "2024-12-05",
		Venue: "Venue A",
		Theme: "Winter Lights",
	}
}

func TestCreateEventRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateEventRequest)
		wantErr string
	}{
		{name: "valid without invoice", mutate: func(*dto.CreateEventRequest) {}},
		{name: "valid with invoice", mutate: func(r *dto.CreateEventRequest) { r.Invoice = intPtr(7000) }},
		{name: "missing name", mutate: func(r *dto.CreateEventRequest) { r.Name = "" }, wantErr: "name is required"},
		{name: "another event type", mutate: func(r *dto.CreateEventRequest) { r.Type = "graduation" }},
		{name: "unknown type", mutate: func(r *dto.CreateEventRequest) { r.Type = "Picnic" }, wantErr: "type is not a recognised value"},
		{name: "blank theme", mutate: func(r *dto.CreateEventRequest) { r.Theme = " " }, wantErr: "theme must not be blank"},
		{name: "negative invoice", mutate: func(r *dto.CreateEventRequest) { r.Invoice = intPtr(-1) }, wantErr: "invoice must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCreateEventRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	req := validRequest()
	event := req.ToModel(7, 9000, now)

	assert.Equal(t, 7, event.EventID)
	assert.Equal(t, 9000, event.Invoice)
	assert.Equal(t, now, event.CreatedAt)

	req.Invoice = intPtr(15000)
	assert.Equal(t, 15000, req.ToModel(7, 9000, now).Invoice)
}

func TestUpdateEventRequest_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)

	event := model.Event{EventID: 1, Name: "Launch", Type: gModel.EventTypeCorporate, Date: "2024-03-01", Venue: "Venue A", Theme: "Neon", Invoice: 6000}
	event.Touch(created)

	req := dto.UpdateEventRequest{Theme: strPtr("Pastel")}
	require.False(t, req.IsEmpty())

	req.Apply(&event, now)

	assert.Equal(t, "Pastel", event.Theme)
	assert.Equal(t, "Launch", event.Name)
	assert.Equal(t, 6000, event.Invoice)
	assert.Equal(t, created, event.CreatedAt)
	assert.Equal(t, now, event.ModifiedAt)

	assert.True(t, (&dto.UpdateEventRequest{}).IsEmpty())
}
