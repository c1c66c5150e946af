package model

import (
	"strings"

	"pawcare-admin/internal/consts"
)

type Education struct {
	Audit
	Tips        string       `json:"tips" gorm:"size:1000;not null" validate:"required,max=1000"`
	URL         string       `json:"url" gorm:"size:1024;not null" validate:"required,httpurl"`
	Title       string       `json:"title" gorm:"size:200" validate:"max=200"`
	Category    string       `json:"category" gorm:"size:30;index" validate:"enum=education_category"`
	Difficulty  string       `json:"difficulty" gorm:"size:20" validate:"enum=difficulty"`
	Tags        []string     `json:"tags" gorm:"serializer:json" validate:"dive,max=30"`
	IsPublished bool         `json:"isPublished" gorm:"index"`
	Views       int64        `json:"views" gorm:"not null;default:0"`
	Likes       int64        `json:"likes" gorm:"not null;default:0"`
	Creator     *UserSummary `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Updater     *UserSummary `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy"`
}

func (Education) TableName() string {
	return "education"
}

func (e *Education) Normalize() {
	e.Tips = strings.TrimSpace(e.Tips)
	e.URL = strings.TrimSpace(e.URL)
	e.Title = strings.TrimSpace(e.Title)
	e.Tags = trimAll(e.Tags)
	if e.Category == "" {
		e.Category = consts.EducationCategoryGeneral
	}
	if e.Difficulty == "" {
		e.Difficulty = consts.DifficultyBeginner
	}
}
