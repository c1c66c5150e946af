package education

import (
	"context"
	"testing"

	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/education/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_KeepsConcurrentCounterIncrements(t *testing.T) {
	gdb := testutils.SetupDB(t)
	m := New(platformservice.NewAppService(testutils.TestConfig(t), nil), gdb)
	counters := repo.NewCounterRepository(gdb)
	ctx := context.Background()

	entry, err := m.Service.Create(ctx, 0, &model.Education{
		Tips: "Keep water bowls full",
		URL:  "https://example.com/hydration",
	})
	require.NoError(t, err)

	updated, err := m.Service.Update(ctx, entry.ID, 1, func(e *model.Education) error {
		// another request counts a view and a like after this one loaded the row
		if err := counters.IncrementViews(ctx, e.ID); err != nil {
			return err
		}
		if _, err := counters.IncrementLikes(ctx, e.ID); err != nil {
			return err
		}
		e.Title = "Hydration"
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Hydration", updated.Title)
	assert.Equal(t, int64(1), updated.Views)
	assert.Equal(t, int64(1), updated.Likes)
}
