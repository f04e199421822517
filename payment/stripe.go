package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/refund"
)

type Stripe struct {
	apiKey     string
	successURL string
	cancelURL  string
}

// NewStripeProcessor sets the global SDK key; every Stripe call uses it.
func NewStripeProcessor(apiKey, successURL, cancelURL string) *Stripe {
	stripe.Key = apiKey
	return &Stripe{
		apiKey:     apiKey,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (s *Stripe) CreateCheckoutSession(orderID uint, items []LineItem) (*CheckoutSession, error) {
	var lineItems []*stripe.CheckoutSessionLineItemParams
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(toCents(it.Amount)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Metadata: map[string]string{
			"orderID": fmt.Sprintf("%d", orderID),
		},
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}

	result, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create stripe session: %w", err)
	}
	return &CheckoutSession{ID: result.ID, URL: result.URL}, nil
}

func (s *Stripe) SessionStatus(sessionID string) (SessionState, error) {
	result, err := session.Get(sessionID, nil)
	if err != nil {
		return "", fmt.Errorf("get stripe session: %w", err)
	}
	switch {
	case result.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return SessionPaid, nil
	case result.Status == stripe.CheckoutSessionStatusExpired:
		return SessionExpired, nil
	default:
		return SessionUnpaid, nil
	}
}

func (s *Stripe) Refund(sessionID string) error {
	result, err := session.Get(sessionID, nil)
	if err != nil {
		return fmt.Errorf("get stripe session: %w", err)
	}
	if result.PaymentIntent == nil {
		return fmt.Errorf("session %s has no payment intent", sessionID)
	}
	_, err = refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(result.PaymentIntent.ID),
	})
	if err != nil {
		return fmt.Errorf("create stripe refund: %w", err)
	}
	return nil
}

// toCents converts a decimal amount to the integer minor units Stripe wants.
func toCents(d decimal.Decimal) int64 {
	return d.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
