package controllers

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	svc *services.PostService
}

func NewPostController(svc *services.PostService) *PostController {
	return &PostController{svc: svc}
}

// GET /posts
func (pc *PostController) ListOpen(c *gin.Context) {
	out, err := pc.svc.ListOpen(c.Query("category"), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /posts
func (pc *PostController) Create(c *gin.Context) {
	var req services.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	post, err := pc.svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, post)
}

// GET /profile/posts
func (pc *PostController) ListMine(c *gin.Context) {
	posts, err := pc.svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, posts)
}

// POST /posts/:id/close
func (pc *PostController) Close(c *gin.Context) {
	if err := pc.svc.Close(utils.CurrentUserID(c), paramUint(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "post closed")
}

// POST /posts/:id/apply
func (pc *PostController) Apply(c *gin.Context) {
	var req services.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := pc.svc.Apply(utils.CurrentUserID(c), paramUint(c, "id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, app)
}

// GET /posts/:id/applications
func (pc *PostController) Applications(c *gin.Context) {
	apps, err := pc.svc.ListApplications(utils.CurrentUserID(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, apps)
}

type decideReq struct {
	Accept bool `json:"accept"`
}

// PATCH /applications/:id
func (pc *PostController) Decide(c *gin.Context) {
	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := pc.svc.Decide(utils.CurrentUserID(c), paramUint(c, "id"), req.Accept)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, app)
}
