package validator_test

import (
	"bestevents/shared/failure"
	"bestevents/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type colour string

func (c colour) IsValid() bool {
	return c == "red" || c == "blue"
}

type bookingForm struct {
	Name      string  `json:"name" validate:"required,notblank"`
	Colour    colour  `json:"colour" validate:"required,enum"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	MinGuests int     `json:"min_guests" validate:"gte=0,ltefield=MaxGuests"`
	MaxGuests int     `json:"max_guests" validate:"required,gte=1"`
	Theme     *string `json:"theme" validate:"omitempty,notblank"`
	Tint      *colour `json:"tint" validate:"omitempty,enum"`
}

func strPtr(s string) *string { return &s }

func colourPtr(c colour) *colour { return &c }

func validForm() bookingForm {
	return bookingForm{
		Name:      "Spring gala",
		Colour:    "red",
		Date:      "2024-05-01",
		MinGuests: 10,
		MaxGuests: 100,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(f *bookingForm)
		expectError string
	}{
		{
			name:   "valid struct",
			mutate: func(_ *bookingForm) {},
		},
		{
			name:        "missing required field uses json name",
			mutate:      func(f *bookingForm) { f.Name = "" },
			expectError: "name is required",
		},
		{
			name:        "blank field",
			mutate:      func(f *bookingForm) { f.Name = "   " },
			expectError: "name must not be blank",
		},
		{
			name:        "unknown enum member",
			mutate:      func(f *bookingForm) { f.Colour = "green" },
			expectError: "colour is not a recognised value",
		},
		{
			name:        "malformed date",
			mutate:      func(f *bookingForm) { f.Date = "01/05/2024" },
			expectError: "date must match the format 2006-01-02",
		},
		{
			name:        "min above max",
			mutate:      func(f *bookingForm) { f.MinGuests = 500 },
			expectError: "min_guests must be less than or equal to MaxGuests",
		},
		{
			name:   "optional pointer set to valid value",
			mutate: func(f *bookingForm) { f.Theme = strPtr("Roaring twenties"); f.Tint = colourPtr("blue") },
		},
		{
			name:        "optional pointer set to empty value",
			mutate:      func(f *bookingForm) { f.Theme = strPtr("") },
			expectError: "theme must not be blank",
		},
		{
			name:        "optional enum pointer set to unknown value",
			mutate:      func(f *bookingForm) { f.Tint = colourPtr("green") },
			expectError: "tint is not a recognised value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.expectError == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectError)
			assert.True(t, failure.IsValidation(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid clock", field: "18:30", tag: "datetime=15:04", expectError: false},
		{name: "invalid clock", field: "6pm", tag: "datetime=15:04", expectError: true},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Gala","colour":"blue","date":"2024-05-01","min_guests":1,"max_guests":2}`,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"Gala","colour":"green","date":"2024-05-01","min_guests":1,"max_guests":2}`,
			expectError: true,
		},
		{
			name:        "non numeric number",
			jsonBody:    `{"name":"Gala","colour":"blue","date":"2024-05-01","min_guests":"many","max_guests":2}`,
			expectError: true,
		},
		{
			name:        "unknown field",
			jsonBody:    `{"name":"Gala","colour":"blue","date":"2024-05-01","max_guests":2,"budget":10}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, failure.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
