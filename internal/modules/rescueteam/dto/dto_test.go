package dto

import (
	"testing"

	"pawcare-admin/internal/modules/resource"

	"github.com/stretchr/testify/assert"
)

func TestRescueTeamFilter_Clauses(t *testing.T) {
	active := true
	f := &RescueTeamFilter{
		Specialization: []string{"Dogs, Cats", " ", "Birds"},
		Availability:   "Available",
		IsActive:       &active,
	}

	assert.Equal(t, []resource.Clause{
		resource.HasAny("specialization", []string{"Dogs", "Cats", "Birds"}),
		resource.Eq("availability", "Available"),
		resource.Eq("is_active", true),
	}, f.Clauses())
}

func TestRescueTeamFilter_Empty(t *testing.T) {
	assert.Empty(t, (&RescueTeamFilter{Specialization: []string{",,"}}).Clauses())
}
