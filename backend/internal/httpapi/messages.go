package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": s.messaging.ContactsOf(currentUserID(c))})
}

func (s *Server) handleConversation(c *gin.Context) {
	messages := s.messaging.Conversation(currentUserID(c), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (s *Server) handleSendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := s.messaging.Send(currentUserID(c), c.Param("userId"), req.Content)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (s *Server) handleMarkRead(c *gin.Context) {
	s.messaging.MarkRead(currentUserID(c), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (s *Server) handleUnreadCount(c *gin.Context) {
	count := s.messaging.UnreadCount(currentUserID(c), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
