package dto

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
)

// ReportInput is shared by create and update. Uploaded photos are appended
// to the ones already stored.
type ReportInput struct {
	AnimalType      *string `json:"animalType"`
	AnimalCondition *string `json:"animalCondition"`
	Location        *string `json:"location"`
	Description     *string `json:"description"`
	ContactName     *string `json:"contactName"`
	ContactPhone    *string `json:"contactPhone"`
	ContactEmail    *string `json:"contactEmail"`
	Priority        *string `json:"priority"`
}

func (in *ReportInput) Apply(r *model.Report) {
	if in.AnimalType != nil {
		r.AnimalType = *in.AnimalType
	}
	if in.AnimalCondition != nil {
		r.AnimalCondition = *in.AnimalCondition
	}
	if in.Location != nil {
		r.Location = *in.Location
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.ContactName != nil {
		r.ContactName = *in.ContactName
	}
	if in.ContactPhone != nil {
		r.ContactPhone = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		r.ContactEmail = *in.ContactEmail
	}
	if in.Priority != nil {
		r.Priority = *in.Priority
	}
}

type ReportFilter struct {
	Status          string `form:"status"`
	Priority        string `form:"priority"`
	AnimalCondition string `form:"animalCondition"`
	AnimalType      string `form:"animalType"`
}

func (f *ReportFilter) Clauses() []resource.Clause {
	var clauses []resource.Clause
	if f.Status != "" {
		clauses = append(clauses, resource.Eq("status", f.Status))
	}
	if f.Priority != "" {
		clauses = append(clauses, resource.Eq("priority", f.Priority))
	}
	if f.AnimalCondition != "" {
		clauses = append(clauses, resource.Eq("animal_condition", f.AnimalCondition))
	}
	if f.AnimalType != "" {
		clauses = append(clauses, resource.Contains("animal_type", f.AnimalType))
	}
	return clauses
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type UpdateStatusRequest struct {
	Status     string `json:"status" binding:"required,enum=report_status"`
	AssignedTo *uint  `json:"assignedTo"`
}
