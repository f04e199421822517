package services

import (
	"testing"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatusCoversAllPairs(t *testing.T) {
	cases := []struct {
		cs   entity.ClientStatus
		fs   entity.FreelancerStatus
		want entity.OrderStatus
	}{
		{entity.ClientPending, entity.FreelancerPending, entity.OrderPending},
		{entity.ClientPending, entity.FreelancerInProgress, entity.OrderInProgress},
		{entity.ClientPending, entity.FreelancerCompleted, entity.OrderReview},
		{entity.ClientDelivered, entity.FreelancerPending, entity.OrderInProgress},
		{entity.ClientDelivered, entity.FreelancerInProgress, entity.OrderInProgress},
		{entity.ClientDelivered, entity.FreelancerCompleted, entity.OrderCompleted},
		{entity.ClientCompleted, entity.FreelancerPending, entity.OrderInProgress},
		{entity.ClientCompleted, entity.FreelancerInProgress, entity.OrderInProgress},
		{entity.ClientCompleted, entity.FreelancerCompleted, entity.OrderCompleted},
	}

	for _, tc := range cases {
		got := DeriveStatus(entity.OrderInProgress, tc.cs, tc.fs)
		assert.Equalf(t, tc.want, got, "pair (%s, %s)", tc.cs, tc.fs)
	}
}

func TestDeriveStatusKeepsPaymentConfirmed(t *testing.T) {
	// both sides still pending on a freshly paid order: the derived Pending
	// must not override the payment confirmation
	got := DeriveStatus(entity.OrderPaymentConfirmed, entity.ClientPending, entity.FreelancerPending)
	assert.Equal(t, entity.OrderPaymentConfirmed, got)

	// any real progress moves the order forward as usual
	got = DeriveStatus(entity.OrderPaymentConfirmed, entity.ClientPending, entity.FreelancerInProgress)
	assert.Equal(t, entity.OrderInProgress, got)
}
