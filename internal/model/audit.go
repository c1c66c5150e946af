package model

import "time"

// Audit holds the columns shared by every managed resource. CreatedBy and
// UpdatedBy are weak references to users.id: no foreign key is declared.
type Audit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	IsActive  bool      `json:"isActive" gorm:"not null;index"`
	CreatedBy *uint     `json:"createdBy,omitempty" gorm:"index"`
	UpdatedBy *uint     `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Audit) GetID() uint {
	return a.ID
}

func (a *Audit) SetCreatedBy(userID uint) {
	a.CreatedBy = &userID
}

func (a *Audit) SetUpdatedBy(userID uint) {
	a.UpdatedBy = &userID
}

func (a *Audit) SetActive(active bool) {
	a.IsActive = active
}
