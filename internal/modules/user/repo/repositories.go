package repo

import (
	"context"
	"time"

	"pawcare-admin/internal/model"

	"gorm.io/gorm"
)

// UserFilter narrows the admin user list. Nil fields are not applied.
type UserFilter struct {
	Search   string
	Role     string
	IsActive *bool
}

// UserStats is the account breakdown shown on the admin dashboard.
type UserStats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	Locked   int64            `json:"locked"`
	ByRole   map[string]int64 `json:"byRole"`
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByLogin(ctx context.Context, identifier string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	UpdateLoginState(ctx context.Context, userID uint, attempts int, lockUntil, lastLogin *time.Time) error
	UpdatePasswordByID(ctx context.Context, userID uint, hashedPassword string) error
	UpdateActiveByID(ctx context.Context, userID uint, active bool) error
	DeleteByID(ctx context.Context, userID uint) error
	AdminListUsers(ctx context.Context, filter UserFilter, order string, offset, limit int) ([]model.User, int64, error)
	Stats(ctx context.Context, now time.Time) (*UserStats, error)
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}
