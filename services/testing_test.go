package services

import (
	"fmt"
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/payment"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeGateway implements payment.Processor for tests.
type fakeGateway struct {
	createErr error
	state     payment.SessionState
	stateErr  error
	refundErr error

	sessions  int
	refunds   int
	lastItems []payment.LineItem
}

func (f *fakeGateway) CreateCheckoutSession(orderID uint, items []payment.LineItem) (*payment.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.sessions++
	f.lastItems = items
	return &payment.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d_%d", orderID, f.sessions),
		URL: "https://checkout.example.com/pay",
	}, nil
}

func (f *fakeGateway) SessionStatus(sessionID string) (payment.SessionState, error) {
	if f.stateErr != nil {
		return "", f.stateErr
	}
	return f.state, nil
}

func (f *fakeGateway) Refund(sessionID string) error {
	if f.refundErr != nil {
		return f.refundErr
	}
	f.refunds++
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory DB per test, isolated by name across tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Gig{}, &entity.GigPackage{},
		&entity.Post{}, &entity.Application{},
		&entity.Order{}, &entity.Review{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.Report{},
	))
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB, *fakeGateway) {
	t.Helper()
	db := newTestDB(t)
	gw := &fakeGateway{state: payment.SessionUnpaid}
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewGigRepository(db),
		repository.NewUserRepository(db),
		repository.NewReviewRepository(db),
		repository.NewChatRepository(db),
		gw,
		decimal.NewFromFloat(0.10),
	)
	return svc, db, gw
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: role, Active: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGig(t *testing.T, db *gorm.DB, freelancerID uint, price string) *entity.Gig {
	t.Helper()
	g := &entity.Gig{
		Title:        "Logo design",
		Category:     "design",
		Active:       true,
		FreelancerID: freelancerID,
		Packages: []entity.GigPackage{
			{
				Tier:         entity.TierBasic,
				Name:         "Basic logo",
				Price:        decimal.RequireFromString(price),
				Features:     entity.StringList{"1 concept", "PNG export"},
				DeliveryDays: 3,
				Revisions:    1,
			},
		},
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

// placePaidOrder walks a fresh order to the paid state.
func placePaidOrder(t *testing.T, svc *OrderService, gw *fakeGateway, clientID uint, gig *entity.Gig) *entity.Order {
	t.Helper()
	out, err := svc.PlaceOrder(clientID, &PlaceOrderReq{GigID: gig.ID, Package: entity.TierBasic})
	require.NoError(t, err)

	gw.state = payment.SessionPaid
	order, err := svc.VerifyPayment(out.Order.CheckoutSessionID)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentPaid, order.PaymentStatus)
	return order
}
