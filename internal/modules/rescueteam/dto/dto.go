package dto

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
)

type RescueTeamInput struct {
	TeamName       *string   `json:"teamName"`
	TeamAddress    *string   `json:"teamAddress"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	Specialization *[]string `json:"specialization"`
	TeamSize       *int      `json:"teamSize"`
	Availability   *string   `json:"availability"`
	Equipment      *[]string `json:"equipment"`
	IsActive       *bool     `json:"isActive"`
}

func (in *RescueTeamInput) Apply(t *model.RescueTeam) {
	if in.TeamName != nil {
		t.TeamName = *in.TeamName
	}
	if in.TeamAddress != nil {
		t.TeamAddress = *in.TeamAddress
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Specialization != nil {
		t.Specialization = *in.Specialization
	}
	if in.TeamSize != nil {
		t.TeamSize = *in.TeamSize
	}
	if in.Availability != nil {
		t.Availability = *in.Availability
	}
	if in.Equipment != nil {
		t.Equipment = *in.Equipment
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
}

// RescueTeamFilter matches teams having any of the listed specializations.
type RescueTeamFilter struct {
	Specialization []string `form:"specialization"`
	Availability   string   `form:"availability"`
	IsActive       *bool    `form:"isActive"`
}

func (f *RescueTeamFilter) Clauses() []resource.Clause {
	var clauses []resource.Clause
	if specs := splitValues(f.Specialization); len(specs) > 0 {
		clauses = append(clauses, resource.HasAny("specialization", specs))
	}
	if f.Availability != "" {
		clauses = append(clauses, resource.Eq("availability", f.Availability))
	}
	if f.IsActive != nil {
		clauses = append(clauses, resource.Eq("is_active", *f.IsActive))
	}
	return clauses
}
