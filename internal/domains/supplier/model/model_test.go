package model_test

import (
	"bestevents/internal/domains/supplier/model"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSupplier_Rendering(t *testing.T) {
	supplier := model.Supplier{SupplierID: 4, Name: "Feast & Co", ServiceType: model.ServiceTypeCatering, ContactDetails: "020 7946 0000"}

	assert.Equal(t, "Supplier ID: 4\nName: Feast & Co\nService Type: Catering Company\nContact Details: 020 7946 0000", supplier.String())
	assert.Equal(t, []string{"4", "Feast & Co", "Catering Company", "020 7946 0000"}, supplier.Row())
}

func TestServiceType(t *testing.T) {
	assert.True(t, model.ServiceTypeFurniture.IsValid())
	assert.False(t, model.ServiceType("plumbing").IsValid())
	assert.Equal(t, "Entertainment Company", model.ServiceTypeEntertainment.Label())
	assert.Len(t, model.ServiceTypes.Codes(), 5)

	var fromLabel struct {
		ServiceType model.ServiceType `json:"service_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"service_type":"Cleaning Company"}`), &fromLabel))
	assert.Equal(t, model.ServiceTypeCleaning, fromLabel.ServiceType)

	var fromYAML model.Supplier
	require.NoError(t, yaml.Unmarshal([]byte("supplier_id: 2\nservice_type: decorations\n"), &fromYAML))
	assert.Equal(t, model.ServiceTypeDecorations, fromYAML.ServiceType)
	assert.Equal(t, 2, fromYAML.SupplierID)
}
