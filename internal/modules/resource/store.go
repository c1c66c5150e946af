package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pawcare-admin/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary of Service.
type Store[T any] interface {
	List(ctx context.Context, q Query) ([]T, int64, error)
	Get(ctx context.Context, id uint, scope []Clause) (*T, error)
	Create(ctx context.Context, entity *T) error
	// Save writes every column except omit.
	Save(ctx context.Context, entity *T, omit ...string) error
	Delete(ctx context.Context, id uint) error
	Deactivate(ctx context.Context, id uint) error
}

// GormStore implements Store over gorm. Field names in clauses are column
// names and come from code, never from request input.
type GormStore[T any] struct {
	db       *gorm.DB
	preloads []string
}

func NewGormStore[T any](db *gorm.DB, preloads ...string) *GormStore[T] {
	return &GormStore[T]{db: db, preloads: preloads}
}

func (s *GormStore[T]) DB() *gorm.DB {
	return s.db
}

func (s *GormStore[T]) List(ctx context.Context, q Query) ([]T, int64, error) {
	var items []T
	var total int64

	tx := s.db.WithContext(ctx).Model(new(T))
	tx = applyClauses(tx, q.Clauses)
	tx = applySearch(tx, q.Search, q.SearchFields)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.Sort.Field != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Field}, Desc: q.Sort.Desc})
	}
	// tie-break so paging is stable
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})

	if err := s.withPreloads(tx).Offset(q.Offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}

func (s *GormStore[T]) Get(ctx context.Context, id uint, scope []Clause) (*T, error) {
	var item T
	tx := applyClauses(s.db.WithContext(ctx).Model(new(T)), scope)
	if err := s.withPreloads(tx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormStore[T]) Create(ctx context.Context, entity *T) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

func (s *GormStore[T]) Save(ctx context.Context, entity *T, omit ...string) error {
	return s.db.WithContext(ctx).Omit(append([]string{clause.Associations}, omit...)...).Save(entity).Error
}

func (s *GormStore[T]) Delete(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate flips is_active to false. Already inactive rows count as missing.
func (s *GormStore[T]) Deactivate(ctx context.Context, id uint) error {
	tx := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore[T]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func applyClauses(tx *gorm.DB, clauses []Clause) *gorm.DB {
	for _, c := range clauses {
		switch c.Op {
		case OpEq:
			tx = tx.Where(c.Field+" = ?", c.Value)
		case OpContains:
			tx = tx.Where("LOWER("+c.Field+")"+db.LikeEscaped, db.ContainsPattern(fmt.Sprint(c.Value)))
		case OpGte:
			tx = tx.Where(c.Field+" >= ?", c.Value)
		case OpLte:
			tx = tx.Where(c.Field+" <= ?", c.Value)
		case OpHasAny:
			values, _ := c.Value.([]string)
			if len(values) == 0 {
				continue
			}
			// list columns are stored as JSON arrays of strings, so each value
			// is matched in its encoded form, quotes included
			conds := make([]string, 0, len(values))
			args := make([]any, 0, len(values))
			for _, v := range values {
				encoded, err := json.Marshal(v)
				if err != nil {
					continue
				}
				conds = append(conds, c.Field+db.LikeEscaped)
				args = append(args, "%"+db.EscapeLike(string(encoded))+"%")
			}
			if len(conds) == 0 {
				continue
			}
			tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
	}
	return tx
}

func applySearch(tx *gorm.DB, term string, fields []string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return tx
	}
	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	pattern := db.ContainsPattern(term)
	for _, f := range fields {
		conds = append(conds, "LOWER("+f+")"+db.LikeEscaped)
		args = append(args, pattern)
	}
	return tx.Where("("+strings.Join(conds, " OR ")+")", args...)
}
