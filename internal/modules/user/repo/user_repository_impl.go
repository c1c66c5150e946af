package repo

import (
	"context"
	"strings"
	"time"

	"pawcare-admin/internal/db"
	"pawcare-admin/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin matches the identifier against the username exactly, or
// against the email case-insensitively.
func (r *UserRepository) FindByLogin(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateLoginState writes the lockout columns without touching the rest of
// the row. lastLogin is only written when set.
func (r *UserRepository) UpdateLoginState(ctx context.Context, userID uint, attempts int, lockUntil, lastLogin *time.Time) error {
	updates := map[string]interface{}{
		"login_attempts": attempts,
		"lock_until":     lockUntil,
	}
	if lastLogin != nil {
		updates["last_login"] = *lastLogin
	}
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).UpdateColumns(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordByID(ctx context.Context, userID uint, hashedPassword string) error {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdateActiveByID(ctx context.Context, userID uint, active bool) error {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, userID uint) error {
	tx := r.db.WithContext(ctx).Delete(&model.User{}, userID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) AdminListUsers(
	ctx context.Context,
	filter UserFilter,
	order string,
	offset int,
	limit int,
) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.db.WithContext(ctx).Model(&model.User{})
	if kw := strings.TrimSpace(filter.Search); kw != "" {
		pattern := db.ContainsPattern(kw)
		query = query.Where("(LOWER(username)"+db.LikeEscaped+" OR LOWER(email)"+db.LikeEscaped+")", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order(order).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []model.User{}
	}

	return users, total, nil
}

func (r *UserRepository) Stats(ctx context.Context, now time.Time) (*UserStats, error) {
	stats := &UserStats{ByRole: map[string]int64{}}
	tx := r.db.WithContext(ctx)

	if err := tx.Model(&model.User{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&model.User{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&model.User{}).Where("lock_until > ?", now).Count(&stats.Locked).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	var rows []struct {
		Role  string
		Count int64
	}
	if err := tx.Model(&model.User{}).Select("role, COUNT(*) AS count").Group("role").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByRole[row.Role] = row.Count
	}
	return stats, nil
}
