package repo

import (
	"context"
	"time"

	"pawcare-admin/internal/model"
)

// UserStore is the account access the auth flows need. Lookups return
// gorm.ErrRecordNotFound for missing rows.
type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByLogin(ctx context.Context, identifier string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateLoginState(ctx context.Context, userID uint, attempts int, lockUntil, lastLogin *time.Time) error
	UpdatePasswordByID(ctx context.Context, userID uint, hashedPassword string) error
}
