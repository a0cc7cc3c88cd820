package controllers

import (
	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/services"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	svc *services.ChatbotService
}

func NewChatbotController(svc *services.ChatbotService) *ChatbotController {
	return &ChatbotController{svc: svc}
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /chatbot
func (cc *ChatbotController) Ask(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reply, err := cc.svc.Ask(utils.CurrentUserID(c), req.Message)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reply)
}
