package dto

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
)

// VetInput is the create and update payload. Absent fields are left as they are.
type VetInput struct {
	Hospital         *string   `json:"hospital"`
	Address          *string   `json:"address"`
	Phone            *string   `json:"phone"`
	Email            *string   `json:"email"`
	Website          *string   `json:"website"`
	Services         *[]string `json:"services"`
	EmergencyService *bool     `json:"emergencyService"`
	Rating           *float64  `json:"rating"`
	IsActive         *bool     `json:"isActive"`
}

func (in *VetInput) Apply(v *model.VetEntry) {
	if in.Hospital != nil {
		v.Hospital = *in.Hospital
	}
	if in.Address != nil {
		v.Address = *in.Address
	}
	if in.Phone != nil {
		v.Phone = *in.Phone
	}
	if in.Email != nil {
		v.Email = *in.Email
	}
	if in.Website != nil {
		v.Website = *in.Website
	}
	if in.Services != nil {
		v.Services = *in.Services
	}
	if in.EmergencyService != nil {
		v.EmergencyService = *in.EmergencyService
	}
	if in.Rating != nil {
		v.Rating = *in.Rating
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
}

type VetFilter struct {
	IsActive         *bool `form:"isActive"`
	EmergencyService *bool `form:"emergencyService"`
}

func (f *VetFilter) Clauses() []resource.Clause {
	var clauses []resource.Clause
	if f.IsActive != nil {
		clauses = append(clauses, resource.Eq("is_active", *f.IsActive))
	}
	if f.EmergencyService != nil {
		clauses = append(clauses, resource.Eq("emergency_service", *f.EmergencyService))
	}
	return clauses
}
