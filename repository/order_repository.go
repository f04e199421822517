package repository

import (
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// Delete removes an order. Only the place-order saga uses this, to undo an
// order whose checkout session could not be created.
func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Unscoped().Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) FindByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindBySessionID(sessionID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("checkout_session_id = ?", sessionID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) SetSessionID(orderID uint, sessionID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("checkout_session_id", sessionID).Error
}

func (r *OrderRepository) ListForClient(clientID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.Where("client_id = ?", clientID).
		Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForFreelancer(freelancerID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.Where("freelancer_id = ?", freelancerID).
		Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(status entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&orders).Error
	return orders, total, err
}

// ---------------- Guarded status writes ----------------

// MarkPaid flips an unpaid order to paid/confirmed. The payment_status guard
// makes repeated gateway callbacks for the same session no-ops; the status
// guard keeps a late payment from resurrecting a cancelled order.
func (r *OrderRepository) MarkPaid(orderID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ? AND status NOT IN ?", orderID, entity.PaymentPending,
			[]entity.OrderStatus{entity.OrderCancelled, entity.OrderCompleted}).
		Updates(map[string]any{
			"payment_status": entity.PaymentPaid,
			"status":         entity.OrderPaymentConfirmed,
		})
	return res.RowsAffected == 1, res.Error
}

// ParkRefund records a payment captured for an already-cancelled order as
// Refund Pending, so staff can return the money. Guarded the same way as
// MarkPaid: only the first call moves the row.
func (r *OrderRepository) ParkRefund(orderID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ? AND status = ?", orderID,
			entity.PaymentPending, entity.OrderCancelled).
		Update("payment_status", entity.PaymentRefundPending)
	return res.RowsAffected == 1, res.Error
}

func (r *OrderRepository) MarkPaymentFailed(orderID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, entity.PaymentPending).
		Update("payment_status", entity.PaymentFailed).Error
}

// CancelGuard cancels an order unless it is already terminal.
func (r *OrderRepository) CancelGuard(orderID uint) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.OrderCompleted, entity.OrderCancelled}).
		Update("status", entity.OrderCancelled)
	return res.RowsAffected == 1, res.Error
}

func (r *OrderRepository) SetPaymentStatus(orderID uint, ps entity.PaymentStatus) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_status", ps).Error
}

func (r *OrderRepository) UpdateStatuses(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// StampPayout writes the payout split exactly once. The paid_at IS NULL
// guard is the double-payout lock.
func (r *OrderRepository) StampPayout(tx *gorm.DB, orderID uint, freelancerAmount, fee decimal.Decimal, txnID string, at time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payout_paid_at IS NULL", orderID).
		Updates(map[string]any{
			"payout_freelancer_amount": freelancerAmount,
			"payout_platform_fee":      fee,
			"payout_paid_at":           at,
			"payout_transaction_id":    txnID,
		})
	return res.RowsAffected == 1, res.Error
}

// MarkReviewed flips the review flag once.
func (r *OrderRepository) MarkReviewed(tx *gorm.DB, orderID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND review_submitted = ?", orderID, false).
		Update("review_submitted", true)
	return res.RowsAffected == 1, res.Error
}
