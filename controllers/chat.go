// controllers/chat.go
package controllers

import (
	"net/http"

	"aiva-backend/config"
	"aiva-backend/services"
	"aiva-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	ChatID string `json:"chat_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// Chat advances the scripted conversation for one client chat.
func Chat(c *gin.Context) {
	tech, ok := currentTechnician(c)
	if !ok {
		return
	}

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reply, err := services.NewConversationService(config.DB).
		HandleMessage(tech, input.ChatID, input.Text)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process message")
		return
	}

	c.JSON(http.StatusOK, reply)
}
