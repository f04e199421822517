package controllers

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{svc: svc}
}

// POST /reports
func (rc *ReportController) Create(c *gin.Context) {
	var req services.CreateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, report)
}

// GET /reports
func (rc *ReportController) ListMine(c *gin.Context) {
	reports, err := rc.svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reports)
}

// GET /reports/:id
func (rc *ReportController) Detail(c *gin.Context) {
	report, err := rc.svc.DetailForUser(utils.CurrentUserID(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /admin/reports
func (rc *ReportController) ListAll(c *gin.Context) {
	reports, err := rc.svc.ListAll(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reports)
}

type updateReportStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/reports/:id/status
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	var req updateReportStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.svc.UpdateStatus(utils.CurrentUserID(c), paramUint(c, "id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}
