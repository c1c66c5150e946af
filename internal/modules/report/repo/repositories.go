package repo

import (
	"context"

	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"

	"gorm.io/gorm"
)

type ReportStats struct {
	TotalReports        int64 `json:"totalReports"`
	PendingReports      int64 `json:"pendingReports"`
	InProgressReports   int64 `json:"inProgressReports"`
	ResolvedReports     int64 `json:"resolvedReports"`
	CriticalReports     int64 `json:"criticalReports"`
	HighPriorityReports int64 `json:"highPriorityReports"`
}

type ReportStore interface {
	AddNote(ctx context.Context, note *model.ReportNote) error
	Stats(ctx context.Context) (*ReportStats, error)
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) AddNote(ctx context.Context, note *model.ReportNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Stats counts active reports only.
func (r *ReportRepository) Stats(ctx context.Context) (*ReportStats, error) {
	var stats ReportStats
	counts := []struct {
		dst   *int64
		query string
		args  []interface{}
	}{
		{&stats.TotalReports, "", nil},
		{&stats.PendingReports, "status = ?", []interface{}{consts.ReportStatusPending}},
		{&stats.InProgressReports, "status = ?", []interface{}{consts.ReportStatusInProgress}},
		{&stats.ResolvedReports, "status = ?", []interface{}{consts.ReportStatusResolved}},
		{&stats.CriticalReports, "animal_condition = ?", []interface{}{consts.AnimalConditionCritical}},
		{&stats.HighPriorityReports, "priority = ?", []interface{}{consts.ReportPriorityHigh}},
	}

	for _, c := range counts {
		tx := r.db.WithContext(ctx).Model(&model.Report{}).Where("is_active = ?", true)
		if c.query != "" {
			tx = tx.Where(c.query, c.args...)
		}
		if err := tx.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
