package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pulse/backend/internal/constants"
)

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.social.User(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleSearchUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": s.social.Search(c.Query("q"))})
}

func (s *Server) handleSuggestedUsers(c *gin.Context) {
	limit := constants.DefaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	users, err := s.social.Suggest(currentUserID(c), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) handleFollow(c *gin.Context) {
	if err := s.social.Follow(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "following"})
}

func (s *Server) handleUnfollow(c *gin.Context) {
	if err := s.social.Unfollow(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unfollowed"})
}
