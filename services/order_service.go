package services

import (
	"log"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/payment"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// payoutEpsilon is the tolerance when checking that the caller-supplied
// split sums to the order total.
var payoutEpsilon = decimal.NewFromFloat(0.01)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	GigRepo    *repository.GigRepository
	UserRepo   *repository.UserRepository
	ReviewRepo *repository.ReviewRepository
	ChatRepo   *repository.ChatRepository

	Gateway payment.Processor
	FeeRate decimal.Decimal
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	gigRepo *repository.GigRepository,
	userRepo *repository.UserRepository,
	reviewRepo *repository.ReviewRepository,
	chatRepo *repository.ChatRepository,
	gateway payment.Processor,
	feeRate decimal.Decimal,
) *OrderService {
	return &OrderService{
		DB:         db,
		Repo:       repo,
		GigRepo:    gigRepo,
		UserRepo:   userRepo,
		ReviewRepo: reviewRepo,
		ChatRepo:   chatRepo,
		Gateway:    gateway,
		FeeRate:    feeRate,
	}
}

// ----- DTOs from Controller -----

type PlaceOrderReq struct {
	GigID   uint               `json:"gigId" binding:"required"`
	Package entity.PackageTier `json:"package" binding:"required"`
}

type PlaceOrderRes struct {
	Order       *entity.Order `json:"order"`
	CheckoutURL string        `json:"checkoutUrl"`
}

type UpdateStatusReq struct {
	ClientStatus     entity.ClientStatus     `json:"clientStatus,omitempty"`
	FreelancerStatus entity.FreelancerStatus `json:"freelancerStatus,omitempty"`
	Status           entity.OrderStatus      `json:"status,omitempty"`
}

type PayoutReq struct {
	FreelancerAmount decimal.Decimal `json:"freelancerAmount"`
	PlatformFee      decimal.Decimal `json:"platformFee"`
}

type AddReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ----- Place order -----

// PlaceOrder snapshots the package, persists the order unpaid and opens a
// checkout session. If the gateway refuses the session the order is deleted
// again, so a gateway outage never leaves orphaned unpaid orders behind.
func (s *OrderService) PlaceOrder(clientID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if !req.Package.Valid() {
		return nil, apperr.Validation("unknown package tier")
	}

	gig, err := s.GigRepo.FindByID(req.GigID)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}
	if !gig.Active {
		return nil, apperr.InvalidState("service is not active")
	}
	if gig.FreelancerID == clientID {
		return nil, apperr.InvalidState("cannot order your own service")
	}

	pkg, err := s.GigRepo.FindPackage(gig.ID, req.Package)
	if err != nil {
		return nil, apperr.NotFound("package not configured for this service")
	}

	// totalAmount == round(price * 1.10, 2); the fee is the remainder so the
	// invariant holds exactly regardless of rounding.
	total := pkg.Price.Mul(decimal.NewFromInt(1).Add(s.FeeRate)).Round(2)
	fee := total.Sub(pkg.Price)

	order := &entity.Order{
		ClientID:        clientID,
		FreelancerID:    gig.FreelancerID,
		GigID:           gig.ID,
		SelectedPackage: pkg.Tier,
		PackageDetails: entity.PackageSnapshot{
			Name:         pkg.Name,
			Price:        pkg.Price,
			Description:  pkg.Description,
			Features:     pkg.Features,
			DeliveryDays: pkg.DeliveryDays,
			Revisions:    pkg.Revisions,
		},
		TotalAmount:      total,
		Status:           entity.OrderPending,
		ClientStatus:     entity.ClientPending,
		FreelancerStatus: entity.FreelancerPending,
		PaymentStatus:    entity.PaymentPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	session, err := s.Gateway.CreateCheckoutSession(order.ID, []payment.LineItem{
		{Name: pkg.Name, Amount: pkg.Price},
		{Name: "Platform fee", Amount: fee},
	})
	if err != nil {
		// compensate: void the order we just created
		if delErr := s.Repo.Delete(order.ID); delErr != nil {
			log.Printf("orphaned order %d: delete after gateway failure: %v", order.ID, delErr)
		}
		return nil, apperr.Upstream("payment gateway rejected checkout session", err)
	}

	if err := s.Repo.SetSessionID(order.ID, session.ID); err != nil {
		return nil, err
	}
	order.CheckoutSessionID = session.ID

	return &PlaceOrderRes{Order: order, CheckoutURL: session.URL}, nil
}

// ----- Verify payment -----

// VerifyPayment asks the gateway for the state of a checkout session and
// moves the order accordingly. The guarded update makes repeat calls for an
// already-paid session no-ops.
func (s *OrderService) VerifyPayment(sessionID string) (*entity.Order, error) {
	order, err := s.Repo.FindBySessionID(sessionID)
	if err != nil {
		return nil, apperr.NotFound("no order for this checkout session")
	}

	state, err := s.Gateway.SessionStatus(sessionID)
	if err != nil {
		return nil, apperr.Upstream("payment gateway query failed", err)
	}

	switch state {
	case payment.SessionPaid:
		first, err := s.Repo.MarkPaid(order.ID)
		if err != nil {
			return nil, err
		}
		if first {
			// parties can start talking once the payment clears
			if err := s.ChatRepo.CreateRoom(&entity.ChatRoom{OrderID: order.ID}); err != nil {
				return nil, err
			}
		} else {
			// the order may have been cancelled while the session was open;
			// the money was still captured, so park it for a staff refund
			parked, err := s.Repo.ParkRefund(order.ID)
			if err != nil {
				return nil, err
			}
			if parked {
				log.Printf("payment captured for cancelled order %d, refund pending", order.ID)
			}
		}
	case payment.SessionExpired:
		if err := s.Repo.MarkPaymentFailed(order.ID); err != nil {
			return nil, err
		}
	}
	// still-open unpaid sessions leave the order untouched

	return s.Repo.FindByID(order.ID)
}

// ----- Update status -----

// UpdateStatus applies a role-gated sub-status write and re-derives the
// overall status from the transition table.
func (s *OrderService) UpdateStatus(actorID uint, role string, orderID uint, req *UpdateStatusReq) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}
	if order.Status == entity.OrderCancelled {
		return nil, apperr.InvalidState("order is cancelled")
	}

	updates := map[string]any{}
	cs, fs := order.ClientStatus, order.FreelancerStatus

	switch role {
	case entity.RoleClient:
		if order.ClientID != actorID {
			return nil, apperr.Forbidden("not your order")
		}
		if req.ClientStatus != entity.ClientDelivered {
			return nil, apperr.Forbidden("clients may only mark an order delivered")
		}
		cs = entity.ClientDelivered
		updates["client_status"] = cs

	case entity.RoleFreelancer:
		if order.FreelancerID != actorID {
			return nil, apperr.Forbidden("not your order")
		}
		if !req.FreelancerStatus.Valid() {
			return nil, apperr.Validation("unknown freelancer status")
		}
		fs = req.FreelancerStatus
		updates["freelancer_status"] = fs

	case entity.RoleAdmin:
		if !req.Status.Valid() {
			return nil, apperr.Validation("unknown order status")
		}
		updates["status"] = req.Status

	default:
		return nil, apperr.Forbidden("forbidden")
	}

	// sub-status writes re-derive the overall status; admin writes set it
	// directly and skip derivation
	if role != entity.RoleAdmin {
		updates["status"] = DeriveStatus(order.Status, cs, fs)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatuses(tx, order.ID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(order.ID)
}

// ----- Cancel -----

type CancelRes struct {
	Order        *entity.Order `json:"order"`
	RefundIssued bool          `json:"refundIssued"`
}

// Cancel marks the order cancelled unless it is already terminal. Paid
// orders get a best-effort refund; when the gateway refuses, the payment
// moves to Refund Pending so the failure stays visible.
func (s *OrderService) Cancel(actorID uint, role string, orderID uint) (*CancelRes, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}
	if role != entity.RoleAdmin && order.ClientID != actorID && order.FreelancerID != actorID {
		return nil, apperr.Forbidden("not your order")
	}

	ok, err := s.Repo.CancelGuard(order.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.InvalidState("order is already completed or cancelled")
	}

	return s.settleCancellation(order.ID)
}

// settleCancellation re-reads the order after the cancel guard, so a payment
// confirmed between the ownership read and the guard still gets refunded.
func (s *OrderService) settleCancellation(orderID uint) (*CancelRes, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != entity.PaymentPaid {
		return &CancelRes{Order: order, RefundIssued: false}, nil
	}

	refundIssued := false
	if err := s.Gateway.Refund(order.CheckoutSessionID); err != nil {
		log.Printf("refund failed for order %d: %v", order.ID, err)
		if err := s.Repo.SetPaymentStatus(order.ID, entity.PaymentRefundPending); err != nil {
			return nil, err
		}
	} else {
		refundIssued = true
		if err := s.Repo.SetPaymentStatus(order.ID, entity.PaymentRefunded); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	return &CancelRes{Order: updated, RefundIssued: refundIssued}, nil
}

// ----- Payout -----

// Payout credits the freelancer wallet exactly once per order. The stamp is
// a conditional update on paid_at, so a concurrent second call loses.
func (s *OrderService) Payout(orderID uint, req *PayoutReq) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}

	if order.ClientStatus != entity.ClientDelivered || order.FreelancerStatus != entity.FreelancerCompleted {
		return nil, apperr.InvalidState("order is not delivered and completed")
	}
	if order.PaymentStatus != entity.PaymentPaid {
		return nil, apperr.InvalidState("order has not been paid")
	}

	sum := req.FreelancerAmount.Add(req.PlatformFee)
	if sum.Sub(order.TotalAmount).Abs().GreaterThan(payoutEpsilon) {
		return nil, apperr.Validation("freelancer amount and fee must sum to the order total")
	}
	if req.FreelancerAmount.IsNegative() || req.PlatformFee.IsNegative() {
		return nil, apperr.Validation("amounts must not be negative")
	}

	txnID := uuid.NewString()
	now := time.Now()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.StampPayout(tx, order.ID, req.FreelancerAmount, req.PlatformFee, txnID, now)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("order has already been paid out")
		}
		return s.UserRepo.CreditWallet(tx, order.FreelancerID, req.FreelancerAmount)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(order.ID)
}

// ----- Review -----

// AddReview attaches the one allowed review to an order, mirrors it onto the
// gig and recomputes the gig's average rating in the same transaction.
func (s *OrderService) AddReview(clientID, orderID uint, req *AddReviewReq) (*entity.Review, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}
	if order.ClientID != clientID {
		return nil, apperr.Forbidden("not your order")
	}
	if order.ClientStatus != entity.ClientDelivered && order.Status != entity.OrderCompleted {
		return nil, apperr.InvalidState("order has not been delivered or completed")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	if len(req.Comment) < 5 || len(req.Comment) > 500 {
		return nil, apperr.Validation("comment must be between 5 and 500 characters")
	}

	review := &entity.Review{
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Now(),
		ClientID:   clientID,
		GigID:      order.GigID,
		OrderID:    order.ID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.MarkReviewed(tx, order.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("review already submitted for this order")
		}
		if err := s.ReviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.GigRepo.UpdateRating(tx, order.GigID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ----- List & Detail -----

// ListForUser scopes the order list by caller role: clients see their own,
// freelancers their assignments, admins everything.
func (s *OrderService) ListForUser(userID uint, role string, limit int) ([]entity.Order, error) {
	switch role {
	case entity.RoleAdmin:
		orders, _, err := s.Repo.ListAll("", 1, limit)
		return orders, err
	case entity.RoleFreelancer:
		return s.Repo.ListForFreelancer(userID, limit)
	default:
		return s.Repo.ListForClient(userID, limit)
	}
}

func (s *OrderService) Detail(userID uint, role string, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}
	if role != entity.RoleAdmin && order.ClientID != userID && order.FreelancerID != userID {
		return nil, apperr.Forbidden("not your order")
	}
	return order, nil
}
