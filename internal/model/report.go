package model

import (
	"strings"
	"time"

	"pawcare-admin/internal/consts"

	"gorm.io/gorm"
)

// Report is an incident report. Reports are never hard deleted: IsActive
// false hides them from every read.
type Report struct {
	Audit
	AnimalType      string       `json:"animalType" gorm:"size:50;not null;index" validate:"required,max=50"`
	AnimalCondition string       `json:"animalCondition" gorm:"size:20;not null;index" validate:"required,enum=animal_condition"`
	Location        string       `json:"location" gorm:"size:200;not null" validate:"required,max=200"`
	Description     string       `json:"description" gorm:"size:1000;not null" validate:"required,max=1000"`
	Photos          []Image      `json:"photos" gorm:"serializer:json" validate:"max=5"`
	ContactName     string       `json:"contactName" gorm:"size:100" validate:"max=100"`
	ContactPhone    string       `json:"contactPhone" gorm:"size:20" validate:"omitempty,phone"`
	ContactEmail    string       `json:"contactEmail" gorm:"size:255" validate:"omitempty,email"`
	Status          string       `json:"status" gorm:"size:20;not null;index" validate:"enum=report_status"`
	Priority        string       `json:"priority" gorm:"size:20;not null;index" validate:"enum=report_priority"`
	AssignedTo      *uint        `json:"assignedTo,omitempty"`
	Notes           []ReportNote `json:"notes" gorm:"foreignKey:ReportID"`
	ReportedBy      *uint        `json:"reportedBy,omitempty" gorm:"index"`
	ReportedAt      time.Time    `json:"reportedAt" gorm:"index"`
	Reporter        *UserSummary `json:"reporter,omitempty" gorm:"foreignKey:ReportedBy"`
	Assignee        *UserSummary `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Updater         *UserSummary `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy"`
}

func (Report) TableName() string {
	return "reports"
}

// SetCreatedBy also records the reporter.
func (r *Report) SetCreatedBy(userID uint) {
	r.Audit.SetCreatedBy(userID)
	r.ReportedBy = &userID
}

func (r *Report) Normalize() {
	r.AnimalType = strings.TrimSpace(r.AnimalType)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	r.ContactName = strings.TrimSpace(r.ContactName)
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
	r.ContactEmail = strings.ToLower(strings.TrimSpace(r.ContactEmail))
	if r.Status == "" {
		r.Status = consts.ReportStatusPending
	}
	if r.Priority == "" {
		r.Priority = consts.ReportPriorityMedium
	}
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ReportedAt.IsZero() {
		r.ReportedAt = tx.NowFunc()
	}
	return nil
}

// AttachImages appends photos; nothing is replaced.
func (r *Report) AttachImages(images []Image) []Image {
	r.Photos = append(r.Photos, images...)
	return nil
}

// ReportNote is append-only.
type ReportNote struct {
	ID       uint         `json:"id" gorm:"primaryKey"`
	ReportID uint         `json:"reportId" gorm:"not null;index"`
	Content  string       `json:"content" gorm:"size:1000;not null" validate:"required,max=1000"`
	AddedBy  uint         `json:"addedBy" gorm:"not null"`
	AddedAt  time.Time    `json:"addedAt"`
	Author   *UserSummary `json:"author,omitempty" gorm:"foreignKey:AddedBy"`
}

func (ReportNote) TableName() string {
	return "report_notes"
}

func (r *Report) Images() []Image {
	return r.Photos
}
