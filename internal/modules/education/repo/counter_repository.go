package repo

import (
	"context"

	"pawcare-admin/internal/model"

	"gorm.io/gorm"
)

// CounterStore increments engagement counters in place so concurrent
// readers never lose an update.
type CounterStore interface {
	IncrementViews(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) (int64, error)
}

type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.increment(ctx, id, "views")
}

func (r *CounterRepository) IncrementLikes(ctx context.Context, id uint) (int64, error) {
	if err := r.increment(ctx, id, "likes"); err != nil {
		return 0, err
	}
	var likes int64
	err := r.db.WithContext(ctx).Model(&model.Education{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error
	return likes, err
}

func (r *CounterRepository) increment(ctx context.Context, id uint, column string) error {
	result := r.db.WithContext(ctx).Model(&model.Education{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
