package dto_test

import (
	"bestevents/internal/domains/supplier/model"
	"bestevents/internal/domains/supplier/model/dto"
	"bestevents/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSupplierRequest_Decode(t *testing.T) {
	var req dto.CreateSupplierRequest

	err := validator.Validate(strings.NewReader(`{"name":"Sparkle","service_type":"Cleaning Company","contact_details":"hello@sparkle.test"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, model.ServiceTypeCleaning, req.ServiceType)

	err = validator.Validate(strings.NewReader(`{"name":"Sparkle","service_type":"Plumbing","contact_details":"hello@sparkle.test"}`), &req)
	assert.EqualError(t, err, "service_type is not a recognised value")
}

func TestUpdateSupplierRequest_Apply(t *testing.T) {
	now := time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)
	supplier := model.Supplier{SupplierID: 1, Name: "Chairs R Us", ServiceType: model.ServiceTypeFurniture, ContactDetails: "555-0111"}

	serviceType := model.ServiceTypeDecorations
	req := dto.UpdateSupplierRequest{ServiceType: &serviceType}
	require.NoError(t, validator.ValidateStruct(&req))

	req.Apply(&supplier, now)

	assert.Equal(t, model.ServiceTypeDecorations, supplier.ServiceType)
	assert.Equal(t, "Chairs R Us", supplier.Name)
	assert.True(t, (&dto.UpdateSupplierRequest{}).IsEmpty())
}
