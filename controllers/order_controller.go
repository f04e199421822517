package controllers

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// POST /orders, place an order against a gig package
func (oc *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.svc.PlaceOrder(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedWith(c, gin.H{"order": out.Order, "checkoutUrl": out.CheckoutURL})
}

// GET /orders, scoped by caller role
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.svc.ListForUser(utils.CurrentUserID(c), utils.CurrentRole(c),
		queryInt(c, "limit", 50))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.svc.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"order": order})
}

type verifyPaymentReq struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// POST /orders/verify-payment
func (oc *OrderController) VerifyPayment(c *gin.Context) {
	var req verifyPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.VerifyPayment(req.SessionID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"order": order})
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req services.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.UpdateStatus(utils.CurrentUserID(c), utils.CurrentRole(c),
		paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"order": order})
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	out, err := oc.svc.Cancel(utils.CurrentUserID(c), utils.CurrentRole(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"order": out.Order, "refundIssued": out.RefundIssued})
}

// POST /admin/orders/:id/payout
func (oc *OrderController) Payout(c *gin.Context) {
	var req services.PayoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.svc.Payout(paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKWith(c, gin.H{"order": order})
}

// POST /orders/:id/review
func (oc *OrderController) AddReview(c *gin.Context) {
	var req services.AddReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := oc.svc.AddReview(utils.CurrentUserID(c), paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}
