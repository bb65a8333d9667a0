package dto

import (
	"bestevents/internal/domains/supplier/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	"time"
)

type CreateSupplierRequest struct {
	Name           string            `json:"name" validate:"required,notblank,max=255"`
	ServiceType    model.ServiceType `json:"service_type" validate:"required,enum"`
	ContactDetails string            `json:"contact_details" validate:"required,notblank,max=255"`
}

func (c *CreateSupplierRequest) ToModel(id int, now time.Time) model.Supplier {
	supplier := model.Supplier{
		SupplierID:     id,
		Name:           c.Name,
		ServiceType:    c.ServiceType,
		ContactDetails: c.ContactDetails,
	}
	supplier.Touch(now)

	return supplier
}

// UpdateSupplierRequest changes only the fields that are set.
type UpdateSupplierRequest struct {
	Name           *string            `json:"name" validate:"omitempty,notblank,max=255"`
	ServiceType    *model.ServiceType `json:"service_type" validate:"omitempty,enum"`
	ContactDetails *string            `json:"contact_details" validate:"omitempty,notblank,max=255"`
}

func (u *UpdateSupplierRequest) IsEmpty() bool {
	return u.Name == nil && u.ServiceType == nil && u.ContactDetails == nil
}

func (u *UpdateSupplierRequest) Apply(supplier *model.Supplier, now time.Time) {
	if u.Name != nil {
		supplier.Name = *u.Name
	}

	if u.ServiceType != nil {
		supplier.ServiceType = *u.ServiceType
	}

	if u.ContactDetails != nil {
		supplier.ContactDetails = *u.ContactDetails
	}

	supplier.Touch(now)
}

type SupplierResponse struct {
	SupplierID       int    `json:"supplier_id"`
	Name             string `json:"name"`
	ServiceType      string `json:"service_type"`
	ServiceTypeLabel string `json:"service_type_label"`
	ContactDetails   string `json:"contact_details"`
	gDto.Metadata
}

func (r *SupplierResponse) FromModel(model model.Supplier) {
	r.SupplierID = model.SupplierID
	r.Name = model.Name
	r.ServiceType = string(model.ServiceType)
	r.ServiceTypeLabel = model.ServiceType.Label()
	r.ContactDetails = model.ContactDetails
	r.Metadata.FromModel(model.Metadata)
}

type GetSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSuppliersResponse) FromModels(models []model.Supplier, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Suppliers = make([]SupplierResponse, len(models))
	for i, mod := range models {
		r.Suppliers[i].FromModel(mod)
	}
}
