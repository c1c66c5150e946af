package handler

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/common/httpx"
	"pawcare-admin/internal/modules/report/dto"
	"pawcare-admin/internal/modules/report/service"
	"pawcare-admin/internal/modules/resource"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	*resource.Handler[model.Report, *model.Report]
	reportService *service.Service
}

func New(base *resource.Handler[model.Report, *model.Report], reportService *service.Service) *Handler {
	return &Handler{Handler: base, reportService: reportService}
}

func (h *Handler) AddNote(c *gin.Context) {
	actorID, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	report, err := h.reportService.AddNote(c.Request.Context(), id, actorID, req.Content)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to add note")
		return
	}
	httpx.OK(c, "Note added successfully", report)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	actorID, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), id, actorID, req.Status, req.AssignedTo)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update report status")
		return
	}
	httpx.OK(c, "Report status updated successfully", report)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.reportService.Stats(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch report statistics")
		return
	}
	httpx.OK(c, "Report statistics retrieved successfully", stats)
}
