package services

import (
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db))

	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)
	other := seedUser(t, db, "other@uni.edu", entity.RoleClient)
	admin := seedUser(t, db, "admin@uni.edu", entity.RoleAdmin)

	report, err := svc.Create(client.ID, &CreateReportReq{
		Subject:     "Order never delivered",
		Description: "Freelancer went silent after payment.",
		IssueType:   "order",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportPending, report.Status)
	require.NotNil(t, report.DateAt)

	t.Run("filers see only their own", func(t *testing.T) {
		mine, err := svc.ListForUser(client.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		_, err = svc.DetailForUser(other.ID, report.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("staff workflow", func(t *testing.T) {
		updated, err := svc.UpdateStatus(admin.ID, report.ID, entity.ReportInProgress)
		require.NoError(t, err)
		assert.Equal(t, entity.ReportInProgress, updated.Status)
		require.NotNil(t, updated.AdminID)
		assert.Equal(t, admin.ID, *updated.AdminID)

		_, err = svc.UpdateStatus(admin.ID, report.ID, "escalated")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))

		_, err = svc.UpdateStatus(admin.ID, 9999, entity.ReportResolved)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("status filter", func(t *testing.T) {
		pending, err := svc.ListAll(entity.ReportPending)
		require.NoError(t, err)
		assert.Empty(t, pending)

		inProgress, err := svc.ListAll(entity.ReportInProgress)
		require.NoError(t, err)
		assert.Len(t, inProgress, 1)
	})
}
