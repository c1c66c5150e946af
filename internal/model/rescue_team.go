package model

import (
	"strings"

	"pawcare-admin/internal/consts"
)

type RescueTeam struct {
	Audit
	TeamName       string       `json:"teamName" gorm:"size:100;not null" validate:"required,max=100"`
	TeamAddress    string       `json:"teamAddress" gorm:"size:200;not null" validate:"required,max=200"`
	Phone          string       `json:"phone" gorm:"size:20;not null" validate:"required,phone"`
	Email          string       `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Specialization []string     `json:"specialization" gorm:"serializer:json" validate:"dive,enum=specialization"`
	TeamSize       int          `json:"teamSize" validate:"omitempty,min=1,max=50"`
	Availability   string       `json:"availability" gorm:"size:20" validate:"enum=availability"`
	Equipment      []string     `json:"equipment" gorm:"serializer:json"`
	Image          Image        `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	Creator        *UserSummary `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Updater        *UserSummary `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy"`
}

func (RescueTeam) TableName() string {
	return "rescue_teams"
}

func (r *RescueTeam) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.TeamAddress = strings.TrimSpace(r.TeamAddress)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Specialization = trimAll(r.Specialization)
	r.Equipment = trimAll(r.Equipment)
	if r.Availability == "" {
		r.Availability = consts.AvailabilityBusinessHours
	}
}

func (r *RescueTeam) AttachImages(images []Image) []Image {
	return replaceImage(&r.Image, images)
}

func (r *RescueTeam) Images() []Image {
	return singleImage(r.Image)
}
