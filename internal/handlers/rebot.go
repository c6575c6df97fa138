package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/services"
)

type RebotHandler struct {
  rebotService services.RebotService
}

func NewRebotHandler(rebotService services.RebotService) *RebotHandler {
  return &RebotHandler{rebotService: rebotService}
}

// POST /api/rebot/reply
func (rh *RebotHandler) Reply(c *gin.Context) {
  var req struct {
    Message string              `json:"message"`
    History []services.ChatTurn `json:"history"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if req.Message == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
    return
  }
  reply := rh.rebotService.Reply(c.Request.Context(), req.History, req.Message)
  c.JSON(http.StatusOK, gin.H{"reply": reply})
}
