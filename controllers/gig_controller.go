package controllers

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
)

type GigController struct {
	svc *services.GigService
}

func NewGigController(svc *services.GigService) *GigController {
	return &GigController{svc: svc}
}

// GET /gigs
func (gc *GigController) List(c *gin.Context) {
	out, err := gc.svc.List(c.Query("category"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /gigs/:id
func (gc *GigController) Detail(c *gin.Context) {
	gig, err := gc.svc.Detail(paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gig)
}

// GET /gigs/:id/reviews
func (gc *GigController) Reviews(c *gin.Context) {
	reviews, err := gc.svc.Reviews(paramUint(c, "id"),
		queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /freelancer/gigs
func (gc *GigController) Create(c *gin.Context) {
	var req services.CreateGigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	gig, err := gc.svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gig)
}

// GET /freelancer/gigs
func (gc *GigController) ListMine(c *gin.Context) {
	gigs, err := gc.svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gigs)
}

type updateGigReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Active      *bool   `json:"active"`
}

// PATCH /freelancer/gigs/:id
func (gc *GigController) Update(c *gin.Context) {
	var req updateGigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	gig, err := gc.svc.Update(utils.CurrentUserID(c), paramUint(c, "id"), updates)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gig)
}

// PUT /freelancer/gigs/:id/packages
func (gc *GigController) UpsertPackage(c *gin.Context) {
	var req services.PackageIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pkg, err := gc.svc.UpsertPackage(utils.CurrentUserID(c), paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, pkg)
}
