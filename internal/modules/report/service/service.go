package service

import (
	"context"
	"strings"

	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/report/repo"
	"pawcare-admin/internal/modules/resource"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/utils"
)

type Resources = resource.Service[model.Report, *model.Report]

// Service adds triage operations on top of report CRUD.
type Service struct {
	*Resources
	reportStore repo.ReportStore
}

func New(resources *Resources, reportStore repo.ReportStore) *Service {
	return &Service{Resources: resources, reportStore: reportStore}
}

// AddNote appends a note by actorID and returns the updated report.
func (s *Service) AddNote(ctx context.Context, reportID, actorID uint, content string) (*model.Report, error) {
	if _, err := s.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	note := &model.ReportNote{
		ReportID: reportID,
		Content:  strings.TrimSpace(content),
		AddedBy:  actorID,
		AddedAt:  s.Now(),
	}
	if err := utils.ValidateStruct(note); err != nil {
		return nil, err
	}
	if err := s.reportStore.AddNote(ctx, note); err != nil {
		return nil, platformservice.WrapInternal("Failed to add note", err)
	}
	return s.GetByID(ctx, reportID)
}

// UpdateStatus sets the status and, when given, the assignee.
func (s *Service) UpdateStatus(ctx context.Context, reportID, actorID uint, status string, assignedTo *uint) (*model.Report, error) {
	return s.Update(ctx, reportID, actorID, func(r *model.Report) error {
		r.Status = status
		if assignedTo != nil && *assignedTo != 0 {
			r.AssignedTo = assignedTo
		}
		return nil
	})
}

func (s *Service) Stats(ctx context.Context) (*repo.ReportStats, error) {
	stats, err := s.reportStore.Stats(ctx)
	if err != nil {
		return nil, platformservice.WrapInternal("Failed to fetch report statistics", err)
	}
	return stats, nil
}
