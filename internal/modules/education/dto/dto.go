package dto

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
)

type EducationInput struct {
	Tips        *string   `json:"tips"`
	URL         *string   `json:"url"`
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Difficulty  *string   `json:"difficulty"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
	IsActive    *bool     `json:"isActive"`
}

func (in *EducationInput) Apply(e *model.Education) {
	if in.Tips != nil {
		e.Tips = *in.Tips
	}
	if in.URL != nil {
		e.URL = *in.URL
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Difficulty != nil {
		e.Difficulty = *in.Difficulty
	}
	if in.Tags != nil {
		e.Tags = *in.Tags
	}
	if in.IsPublished != nil {
		e.IsPublished = *in.IsPublished
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
}

type EducationFilter struct {
	Category    string `form:"category"`
	Difficulty  string `form:"difficulty"`
	IsPublished *bool  `form:"isPublished"`
	IsActive    *bool  `form:"isActive"`
}

func (f *EducationFilter) Clauses() []resource.Clause {
	var clauses []resource.Clause
	if f.Category != "" {
		clauses = append(clauses, resource.Eq("category", f.Category))
	}
	if f.Difficulty != "" {
		clauses = append(clauses, resource.Eq("difficulty", f.Difficulty))
	}
	if f.IsPublished != nil {
		clauses = append(clauses, resource.Eq("is_published", *f.IsPublished))
	}
	if f.IsActive != nil {
		clauses = append(clauses, resource.Eq("is_active", *f.IsActive))
	}
	return clauses
}

type LikeResponse struct {
	ID    uint  `json:"id"`
	Likes int64 `json:"likes"`
}
