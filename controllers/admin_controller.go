package controllers

import (
	"fmt"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
	Export    *services.ExportService
}

func NewAdminController(db *gorm.DB, userRepo *repository.UserRepository,
	orderRepo *repository.OrderRepository, export *services.ExportService) *AdminController {
	return &AdminController{DB: db, UserRepo: userRepo, OrderRepo: orderRepo, Export: export}
}

// GET /admin/dashboard, headline counts
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers, totalGigs, openReports, ordersToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Gig{}).Where("active = ?", true).Count(&totalGigs).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Report{}).
		Where("status IN ?", []string{entity.ReportPending, entity.ReportInProgress}).
		Count(&openReports).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).Where("created_at >= ?", start).Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":  totalUsers,
		"activeGigs":  totalGigs,
		"openReports": openReports,
		"ordersToday": ordersToday,
	})
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	users, total, err := ac.UserRepo.List(c.Query("role"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total})
}

type setActiveReq struct {
	Active *bool `json:"active" binding:"required"`
}

// PATCH /admin/users/:id/active
func (ac *AdminController) SetUserActive(c *gin.Context) {
	var req setActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.UserRepo.SetActive(paramUint(c, "id"), *req.Active); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "user updated")
}

// GET /admin/orders
func (ac *AdminController) Orders(c *gin.Context) {
	orders, total, err := ac.OrderRepo.ListAll(entity.OrderStatus(c.Query("status")),
		queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKWith(c, gin.H{"orders": orders, "total": total})
}

// GET /admin/exports/orders, PDF download
func (ac *AdminController) ExportOrders(c *gin.Context) {
	pdf, err := ac.Export.OrdersPDF(entity.OrderStatus(c.Query("status")))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	sendPDF(c, pdf, "orders-report")
}

// GET /admin/exports/revenue, PDF download
func (ac *AdminController) ExportRevenue(c *gin.Context) {
	pdf, err := ac.Export.RevenuePDF()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	sendPDF(c, pdf, "revenue-report")
}

func sendPDF(c *gin.Context, data []byte, name string) {
	filename := fmt.Sprintf("%s-%s.pdf", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", data)
}
