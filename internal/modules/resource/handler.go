package resource

import (
	"strings"

	"pawcare-admin/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// Applier is a request payload that copies its present fields onto an entity.
type Applier[PT any] interface {
	Apply(entity PT)
}

// Filter is a bound list query that compiles to store clauses.
type Filter interface {
	Clauses() []Clause
}

type HandlerOptions[PT any] struct {
	NewInput  func() Applier[PT]
	NewFilter func() Filter
	// FileField is the multipart field holding uploads. Empty disables uploads.
	FileField string
}

// Handler exposes a Service over HTTP: list, search, get, create, update
// and delete.
type Handler[T any, PT interface {
	*T
	Entity
}] struct {
	svc  *Service[T, PT]
	opts HandlerOptions[PT]
}

func NewHandler[T any, PT interface {
	*T
	Entity
}](svc *Service[T, PT], opts HandlerOptions[PT]) *Handler[T, PT] {
	return &Handler[T, PT]{svc: svc, opts: opts}
}

func (h *Handler[T, PT]) Service() *Service[T, PT] {
	return h.svc
}

func (h *Handler[T, PT]) name() string {
	return h.svc.Options().Name
}

func (h *Handler[T, PT]) plural() string {
	return strings.ToLower(h.name()) + " list"
}

func (h *Handler[T, PT]) listParams(c *gin.Context) (ListParams, bool) {
	var q httpx.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.WriteBindError(c, err)
		return ListParams{}, false
	}
	p := ListParams{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Search:    q.Search,
	}
	if h.opts.NewFilter != nil {
		f := h.opts.NewFilter()
		if err := c.ShouldBindQuery(f); err != nil {
			httpx.WriteBindError(c, err)
			return ListParams{}, false
		}
		p.Filters = f.Clauses()
	}
	return p, true
}

func (h *Handler[T, PT]) List(c *gin.Context) {
	p, ok := h.listParams(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch "+h.plural())
		return
	}
	httpx.OK(c, h.name()+" list retrieved successfully", result)
}

// Search reads the term from q, falling back to search.
func (h *Handler[T, PT]) Search(c *gin.Context) {
	p, ok := h.listParams(c)
	if !ok {
		return
	}
	term := c.Query("q")
	if term == "" {
		term = p.Search
	}

	result, err := h.svc.Search(c.Request.Context(), term, p)
	if err != nil {
		httpx.WriteServiceError(c, err, "Search failed")
		return
	}
	httpx.OK(c, "Search completed successfully", result)
}

func (h *Handler[T, PT]) Get(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch "+strings.ToLower(h.name()))
		return
	}
	httpx.OK(c, h.name()+" retrieved successfully", item)
}

// Create stamps the caller as creator when one is authenticated.
func (h *Handler[T, PT]) Create(c *gin.Context) {
	in := h.opts.NewInput()
	uploads, err := httpx.BindPayload(c, in, h.opts.FileField)
	if err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	actorID, _ := httpx.CurrentUserID(c)
	entity := PT(new(T))
	entity.SetActive(true)
	in.Apply(entity)

	created, err := h.svc.Create(c.Request.Context(), actorID, entity, uploads...)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create "+strings.ToLower(h.name()))
		return
	}
	httpx.Created(c, h.name()+" created successfully", created)
}

func (h *Handler[T, PT]) Update(c *gin.Context) {
	actorID, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	in := h.opts.NewInput()
	uploads, err := httpx.BindPayload(c, in, h.opts.FileField)
	if err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, actorID, func(entity PT) error {
		in.Apply(entity)
		return nil
	}, uploads...)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update "+strings.ToLower(h.name()))
		return
	}
	httpx.OK(c, h.name()+" updated successfully", updated)
}

func (h *Handler[T, PT]) Delete(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete "+strings.ToLower(h.name()))
		return
	}
	httpx.OK(c, h.name()+" deleted successfully", nil)
}
