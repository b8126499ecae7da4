package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleAssistantChat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := s.assistant.Send(currentUserID(c), req.Message)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, message)
}

func (s *Server) handleAssistantHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": s.assistant.History(currentUserID(c))})
}

func (s *Server) handleAssistantClear(c *gin.Context) {
	s.assistant.Clear(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
