// Package payment wraps the external payment processor behind a small
// interface so services can run against a fake in tests.
package payment

import "github.com/shopspring/decimal"

// CheckoutSession is the gateway object representing a pending payment.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionState is the gateway's answer when a session is queried.
type SessionState string

const (
	SessionPaid    SessionState = "paid"
	SessionUnpaid  SessionState = "unpaid"
	SessionExpired SessionState = "expired"
)

// LineItem is one row on the hosted checkout page.
type LineItem struct {
	Name   string
	Amount decimal.Decimal
}

type Processor interface {
	// CreateCheckoutSession opens a session for an order. The order id goes
	// into the session metadata so webhooks can find their way back.
	CreateCheckoutSession(orderID uint, items []LineItem) (*CheckoutSession, error)

	// SessionStatus queries the gateway for the payment state of a session.
	SessionStatus(sessionID string) (SessionState, error)

	// Refund returns the full captured amount of a session to the payer.
	Refund(sessionID string) error
}
