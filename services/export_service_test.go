package services

import (
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDFs(t *testing.T) {
	orderSvc, db, gw := newOrderService(t)
	exportSvc := NewExportService(repository.NewOrderRepository(db))

	client := seedUser(t, db, "client@uni.edu", entity.RoleClient)
	freelancer := seedUser(t, db, "fl@uni.edu", entity.RoleFreelancer)
	gig := seedGig(t, db, freelancer.ID, "100")
	placePaidOrder(t, orderSvc, gw, client.ID, gig)

	t.Run("orders report", func(t *testing.T) {
		out, err := exportSvc.OrdersPDF("")
		require.NoError(t, err)
		assert.True(t, len(out) > 4)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("orders report filtered", func(t *testing.T) {
		out, err := exportSvc.OrdersPDF(entity.OrderPaymentConfirmed)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("revenue report", func(t *testing.T) {
		out, err := exportSvc.RevenuePDF()
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(out[:4]))
	})
}
