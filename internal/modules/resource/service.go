package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pawcare-admin/internal/db"
	"pawcare-admin/internal/model"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"
	"pawcare-admin/internal/utils"

	"go.uber.org/zap"
)

// Entity is what every managed resource exposes to Service.
type Entity interface {
	GetID() uint
	SetCreatedBy(userID uint)
	SetUpdatedBy(userID uint)
	SetActive(active bool)
}

// Normalizer is called before every write to trim and derive fields.
type Normalizer interface {
	Normalize()
}

// Attachable entities hold images. AttachImages takes newly stored images
// and returns the ones the entity no longer references.
type Attachable interface {
	AttachImages(images []model.Image) []model.Image
	Images() []model.Image
}

// Files is the part of the upload store Service needs.
type Files interface {
	Save(ctx context.Context, policy storage.Policy, upload storage.Upload) (model.Image, error)
	Remove(ctx context.Context, key string) error
}

type Options struct {
	// Name is used in messages, e.g. "Vet entry not found".
	Name         string
	SearchFields []string
	// SortFields maps public sort keys to columns.
	SortFields  map[string]string
	DefaultSort Sort
	// SoftDelete hides rows with is_active = false from every read and
	// turns Delete into a deactivation.
	SoftDelete   bool
	UniqueFields []string
	Upload       storage.Policy
	// CounterFields are columns maintained by in-place increments. Update
	// never writes them.
	CounterFields []string
}

// Service implements list, search and CRUD for one entity type.
type Service[T any, PT interface {
	*T
	Entity
}] struct {
	*platformservice.AppService
	store Store[T]
	files Files
	opts  Options
}

func NewService[T any, PT interface {
	*T
	Entity
}](app *platformservice.AppService, store Store[T], files Files, opts Options) *Service[T, PT] {
	if opts.DefaultSort.Field == "" {
		opts.DefaultSort = Sort{Field: "created_at", Desc: true}
	}
	if opts.Name == "" {
		opts.Name = "Record"
	}
	return &Service[T, PT]{AppService: app, store: store, files: files, opts: opts}
}

func (s *Service[T, PT]) Options() Options {
	return s.opts
}

func (s *Service[T, PT]) List(ctx context.Context, p ListParams) (*Page[T], error) {
	return s.query(ctx, p)
}

// Search is List with a mandatory term matched against the search fields.
func (s *Service[T, PT]) Search(ctx context.Context, term string, p ListParams) (*Page[T], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, platformservice.NewValidationError("Search term is required")
	}
	p.Search = term
	return s.query(ctx, p)
}

func (s *Service[T, PT]) query(ctx context.Context, p ListParams) (*Page[T], error) {
	page, limit := NormalizePage(p.Page, p.Limit)

	clauses := append([]Clause(nil), p.Filters...)
	clauses = append(clauses, s.scope()...)

	items, total, err := s.store.List(ctx, Query{
		Clauses:      clauses,
		Search:       p.Search,
		SearchFields: s.opts.SearchFields,
		Sort:         s.resolveSort(p.SortBy, p.SortOrder),
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, platformservice.WrapInternal(fmt.Sprintf("Failed to fetch %s list", strings.ToLower(s.opts.Name)), err)
	}
	return &Page[T]{Items: items, Pagination: NewPagination(page, limit, total)}, nil
}

func (s *Service[T, PT]) resolveSort(sortBy, sortOrder string) Sort {
	column, ok := s.opts.SortFields[sortBy]
	if !ok {
		return s.opts.DefaultSort
	}
	return Sort{Field: column, Desc: !strings.EqualFold(sortOrder, "asc")}
}

func (s *Service[T, PT]) scope() []Clause {
	if s.opts.SoftDelete {
		return []Clause{Eq("is_active", true)}
	}
	return nil
}

func (s *Service[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	item, err := s.store.Get(ctx, id, s.scope())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, platformservice.NewNotFoundError(s.opts.Name + " not found")
		}
		return nil, platformservice.WrapInternal(fmt.Sprintf("Failed to fetch %s", strings.ToLower(s.opts.Name)), err)
	}
	return PT(item), nil
}

// Create stamps createdBy, stores any uploads, validates and persists. Files
// stored here are removed again if the write fails. Once the write commits
// the entity is returned even when reloading it fails.
func (s *Service[T, PT]) Create(ctx context.Context, actorID uint, entity PT, uploads ...storage.Upload) (PT, error) {
	stored, err := s.saveUploads(ctx, entity, uploads)
	if err != nil {
		return nil, err
	}

	if a, ok := any(entity).(Attachable); ok && len(stored) > 0 {
		a.AttachImages(stored)
	}
	if actorID != 0 {
		entity.SetCreatedBy(actorID)
	}
	if s.opts.SoftDelete {
		entity.SetActive(true)
	}

	if err := s.write(ctx, entity, s.store.Create); err != nil {
		s.rollback(ctx, stored)
		return nil, err
	}

	created, err := s.GetByID(ctx, entity.GetID())
	if err != nil {
		// the row and its files are committed; return what was written
		s.Logger().Warn("reload after create failed",
			zap.String("resource", s.opts.Name),
			zap.Uint("id", entity.GetID()),
			zap.Error(err),
		)
		return entity, nil
	}
	return created, nil
}

// Update loads the current row, applies mutate and persists it with
// updatedBy stamped. Images the entity stops referencing are removed only
// after the write succeeds.
func (s *Service[T, PT]) Update(ctx context.Context, id, actorID uint, mutate func(PT) error, uploads ...storage.Upload) (PT, error) {
	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.saveUploads(ctx, entity, uploads)
	if err != nil {
		return nil, err
	}

	if mutate != nil {
		if err := mutate(entity); err != nil {
			s.rollback(ctx, stored)
			return nil, err
		}
	}

	var replaced []model.Image
	if a, ok := any(entity).(Attachable); ok && len(stored) > 0 {
		replaced = a.AttachImages(stored)
	}
	entity.SetUpdatedBy(actorID)

	if err := s.write(ctx, entity, s.save); err != nil {
		s.rollback(ctx, stored)
		return nil, err
	}
	s.rollback(ctx, replaced)

	return s.GetByID(ctx, id)
}

// Delete removes the row, or deactivates it for soft-deleted types. Files
// of hard-deleted rows are removed afterwards.
func (s *Service[T, PT]) Delete(ctx context.Context, id uint) error {
	if s.opts.SoftDelete {
		if err := s.store.Deactivate(ctx, id); err != nil {
			return s.deleteError(err)
		}
		return nil
	}

	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.deleteError(err)
	}
	if a, ok := any(entity).(Attachable); ok {
		s.rollback(ctx, a.Images())
	}
	return nil
}

func (s *Service[T, PT]) save(ctx context.Context, entity *T) error {
	return s.store.Save(ctx, entity, s.opts.CounterFields...)
}

func (s *Service[T, PT]) deleteError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return platformservice.NewNotFoundError(s.opts.Name + " not found")
	}
	return platformservice.WrapInternal(fmt.Sprintf("Failed to delete %s", strings.ToLower(s.opts.Name)), err)
}

// write runs the pre-save steps then op, translating unique index
// violations into conflicts.
func (s *Service[T, PT]) write(ctx context.Context, entity PT, op func(context.Context, *T) error) error {
	if n, ok := any(entity).(Normalizer); ok {
		n.Normalize()
	}
	if err := utils.ValidateStruct(entity); err != nil {
		return err
	}
	if err := op(ctx, (*T)(entity)); err != nil {
		if field, ok := db.UniqueViolation(err, s.opts.UniqueFields...); ok {
			if field != "" {
				return platformservice.NewFieldConflictError(field)
			}
			return platformservice.NewConflictError(s.opts.Name + " already exists")
		}
		return platformservice.WrapInternal(fmt.Sprintf("Failed to save %s", strings.ToLower(s.opts.Name)), err)
	}
	return nil
}

func (s *Service[T, PT]) saveUploads(ctx context.Context, entity PT, uploads []storage.Upload) ([]model.Image, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	if _, ok := any(entity).(Attachable); !ok || s.files == nil {
		return nil, platformservice.NewValidationError(s.opts.Name + " does not accept file uploads")
	}
	if limit := s.opts.Upload.MaxFiles; limit > 0 && len(uploads) > limit {
		return nil, platformservice.NewValidationError(fmt.Sprintf("Too many files. Maximum is %d", limit))
	}

	stored := make([]model.Image, 0, len(uploads))
	for _, u := range uploads {
		img, err := s.files.Save(ctx, s.opts.Upload, u)
		if err != nil {
			s.rollback(ctx, stored)
			return nil, err
		}
		stored = append(stored, img)
	}
	return stored, nil
}

// rollback removes files best effort. Failures are logged, never returned.
func (s *Service[T, PT]) rollback(ctx context.Context, images []model.Image) {
	if s.files == nil {
		return
	}
	for _, img := range images {
		if img.IsZero() {
			continue
		}
		if err := s.files.Remove(ctx, img.Path); err != nil {
			s.Logger().Warn("file cleanup failed",
				zap.String("resource", s.opts.Name),
				zap.String("path", img.Path),
				zap.Error(err),
			)
		}
	}
}
