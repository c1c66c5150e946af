package model

import "strings"

type VetEntry struct {
	Audit
	Hospital         string       `json:"hospital" gorm:"size:100;not null" validate:"required,max=100"`
	Address          string       `json:"address" gorm:"size:200;not null" validate:"required,max=200"`
	Phone            string       `json:"phone" gorm:"size:20;not null" validate:"required,phone"`
	Email            string       `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Website          string       `json:"website" gorm:"size:255" validate:"omitempty,httpurl"`
	Services         []string     `json:"services" gorm:"serializer:json"`
	EmergencyService bool         `json:"emergencyService"`
	Rating           float64      `json:"rating" validate:"gte=0,lte=5"`
	Image            Image        `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	Creator          *UserSummary `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Updater          *UserSummary `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy"`
}

func (VetEntry) TableName() string {
	return "vet_directory"
}

func (v *VetEntry) Normalize() {
	v.Hospital = strings.TrimSpace(v.Hospital)
	v.Address = strings.TrimSpace(v.Address)
	v.Phone = strings.TrimSpace(v.Phone)
	v.Email = strings.ToLower(strings.TrimSpace(v.Email))
	v.Website = strings.TrimSpace(v.Website)
	v.Services = trimAll(v.Services)
}

func (v *VetEntry) AttachImages(images []Image) []Image {
	return replaceImage(&v.Image, images)
}

func (v *VetEntry) Images() []Image {
	return singleImage(v.Image)
}
