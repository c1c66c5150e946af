package handler

import (
	"context"

	"pawcare-admin/internal/db"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/common/httpx"
	"pawcare-admin/internal/modules/education/dto"
	"pawcare-admin/internal/modules/education/repo"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// Handler adds the engagement endpoints to the generic CRUD handler.
type Handler struct {
	*resource.Handler[model.Education, *model.Education]
	counters repo.CounterStore
}

func New(base *resource.Handler[model.Education, *model.Education], counters repo.CounterStore) *Handler {
	return &Handler{Handler: base, counters: counters}
}

// View returns one entry and counts the read.
func (h *Handler) View(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.counters.IncrementViews(ctx, id); err != nil {
		httpx.WriteServiceError(c, counterError(err), "Failed to fetch education entry")
		return
	}
	item, err := h.Service().GetByID(ctx, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch education entry")
		return
	}
	httpx.OK(c, "Education entry retrieved successfully", item)
}

func (h *Handler) Like(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	likes, err := h.like(c.Request.Context(), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to like education entry")
		return
	}
	httpx.OK(c, "Education entry liked successfully", dto.LikeResponse{ID: id, Likes: likes})
}

func (h *Handler) like(ctx context.Context, id uint) (int64, error) {
	likes, err := h.counters.IncrementLikes(ctx, id)
	if err != nil {
		return 0, counterError(err)
	}
	return likes, nil
}

func counterError(err error) error {
	if db.IsNotFound(err) {
		return platformservice.NewNotFoundError("Education entry not found")
	}
	return platformservice.WrapInternal("Failed to update counters", err)
}
