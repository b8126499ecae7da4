package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleAllPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.feed.AllPosts()})
}

func (s *Server) handleFollowingFeed(c *gin.Context) {
	posts, err := s.feed.FollowingFeed(currentUserID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) handleAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.feed.Announcements()})
}

func (s *Server) handleJobBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.feed.JobBoard()})
}

func (s *Server) handleUserPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": s.feed.PostsByUser(c.Param("id"))})
}

func (s *Server) handleCreatePost(c *gin.Context) {
	var req struct {
		Content      string   `json:"content" binding:"required"`
		Images       []string `json:"images"`
		IsJobPosting bool     `json:"isJobPosting"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.content.CreatePost(currentUserID(c), req.Content, req.Images, req.IsJobPosting)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) handleDeletePost(c *gin.Context) {
	if err := s.content.DeletePost(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleLikePost(c *gin.Context) {
	if err := s.content.LikePost(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (s *Server) handleUnlikePost(c *gin.Context) {
	if err := s.content.UnlikePost(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

func (s *Server) handlePostComments(c *gin.Context) {
	comments, err := s.feed.CommentsForPost(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := s.content.AddComment(currentUserID(c), c.Param("id"), req.Content)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) handleDeleteComment(c *gin.Context) {
	if err := s.content.DeleteComment(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleLikeComment(c *gin.Context) {
	if err := s.content.LikeComment(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (s *Server) handleUnlikeComment(c *gin.Context) {
	if err := s.content.UnlikeComment(currentUserID(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}
