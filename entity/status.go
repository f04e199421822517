package entity

// Overall order lifecycle.
type OrderStatus string

const (
	OrderPending          OrderStatus = "Pending"
	OrderPaymentConfirmed OrderStatus = "Payment Confirmed"
	OrderInProgress       OrderStatus = "In Progress"
	OrderReview           OrderStatus = "Review"
	OrderRevision         OrderStatus = "Revision"
	OrderCompleted        OrderStatus = "Completed"
	OrderCancelled        OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaymentConfirmed, OrderInProgress,
		OrderReview, OrderRevision, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Client-facing sub-state.
type ClientStatus string

const (
	ClientPending   ClientStatus = "Pending"
	ClientDelivered ClientStatus = "Delivered"
	ClientCompleted ClientStatus = "Completed"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientPending, ClientDelivered, ClientCompleted:
		return true
	}
	return false
}

// Freelancer-facing sub-state.
type FreelancerStatus string

const (
	FreelancerPending    FreelancerStatus = "Pending"
	FreelancerInProgress FreelancerStatus = "In Progress"
	FreelancerCompleted  FreelancerStatus = "Completed"
)

func (s FreelancerStatus) Valid() bool {
	switch s {
	case FreelancerPending, FreelancerInProgress, FreelancerCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentFailed        PaymentStatus = "Failed"
	PaymentRefunded      PaymentStatus = "Refunded"
	PaymentRefundPending PaymentStatus = "Refund Pending"
)
