package services

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
)

type statusPair struct {
	Client     entity.ClientStatus
	Freelancer entity.FreelancerStatus
}

// derivedStatus is total over all nine sub-status combinations. The overall
// status of an order follows from what each side has marked, with one
// exception handled in DeriveStatus below.
var derivedStatus = map[statusPair]entity.OrderStatus{
	{entity.ClientPending, entity.FreelancerPending}:    entity.OrderPending,
	{entity.ClientPending, entity.FreelancerInProgress}: entity.OrderInProgress,
	{entity.ClientPending, entity.FreelancerCompleted}:  entity.OrderReview,

	{entity.ClientDelivered, entity.FreelancerPending}:    entity.OrderInProgress,
	{entity.ClientDelivered, entity.FreelancerInProgress}: entity.OrderInProgress,
	{entity.ClientDelivered, entity.FreelancerCompleted}:  entity.OrderCompleted,

	{entity.ClientCompleted, entity.FreelancerPending}:    entity.OrderInProgress,
	{entity.ClientCompleted, entity.FreelancerInProgress}: entity.OrderInProgress,
	{entity.ClientCompleted, entity.FreelancerCompleted}:  entity.OrderCompleted,
}

// DeriveStatus returns the overall status for a sub-status pair. A derived
// Pending never downgrades an order whose payment is already confirmed.
func DeriveStatus(current entity.OrderStatus, cs entity.ClientStatus, fs entity.FreelancerStatus) entity.OrderStatus {
	next := derivedStatus[statusPair{cs, fs}]
	if next == entity.OrderPending && current == entity.OrderPaymentConfirmed {
		return entity.OrderPaymentConfirmed
	}
	return next
}
