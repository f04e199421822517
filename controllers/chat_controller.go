package controllers

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/resp"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/services"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{svc: svc}
}

// GET /chat/rooms
func (cc *ChatController) Rooms(c *gin.Context) {
	rooms, err := cc.svc.GetRoomsByUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rooms)
}

// GET /chat/rooms/:id/messages
func (cc *ChatController) Messages(c *gin.Context) {
	msgs, err := cc.svc.GetMessages(utils.CurrentUserID(c), paramUint(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, msgs)
}

type sendMessageReq struct {
	Body string `json:"body" binding:"required"`
}

// POST /chat/rooms/:id/messages
func (cc *ChatController) Send(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := cc.svc.SendMessage(paramUint(c, "id"), utils.CurrentUserID(c), req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, msg)
}
