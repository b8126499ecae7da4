package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pulse/backend/internal/assistant"
	"pulse/backend/internal/content"
	"pulse/backend/internal/feed"
	"pulse/backend/internal/messaging"
	"pulse/backend/internal/session"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/config"
	"pulse/backend/pkg/errors"
	"pulse/backend/pkg/logger"
)

// Server wires the core services into a gin router
type Server struct {
	cfg       *config.Config
	social    *social.Service
	content   *content.Service
	feed      *feed.Composer
	messaging *messaging.Service
	assistant *assistant.Service
	session   *session.Store
	logger    *zap.Logger
	router    *gin.Engine
}

// Deps bundles everything the HTTP layer needs
type Deps struct {
	Config    *config.Config
	Social    *social.Service
	Content   *content.Service
	Feed      *feed.Composer
	Messaging *messaging.Service
	Assistant *assistant.Service
	Session   *session.Store
}

// New builds the server and registers all routes
func New(deps Deps) *Server {
	s := &Server{
		cfg:       deps.Config,
		social:    deps.Social,
		content:   deps.Content,
		feed:      deps.Feed,
		messaging: deps.Messaging,
		assistant: deps.Assistant,
		session:   deps.Session,
		logger:    logger.Get(),
	}

	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(ginLogger(s.logger))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.handleRegister)
			auth.POST("/login", s.handleLogin)
			auth.POST("/logout", s.authRequired(), s.handleLogout)
		}

		api.GET("/users/search", s.handleSearchUsers)
		api.GET("/users/suggestions", s.authRequired(), s.handleSuggestedUsers)
		api.GET("/users/:id", s.handleGetUser)
		api.GET("/users/:id/posts", s.handleUserPosts)
		api.POST("/users/:id/follow", s.authRequired(), s.handleFollow)
		api.DELETE("/users/:id/follow", s.authRequired(), s.handleUnfollow)

		api.GET("/feed", s.authRequired(), s.handleFollowingFeed)
		api.GET("/posts", s.handleAllPosts)
		api.GET("/posts/announcements", s.handleAnnouncements)
		api.GET("/posts/jobs", s.handleJobBoard)
		api.POST("/posts", s.authRequired(), s.handleCreatePost)
		api.DELETE("/posts/:id", s.authRequired(), s.handleDeletePost)
		api.POST("/posts/:id/like", s.authRequired(), s.handleLikePost)
		api.DELETE("/posts/:id/like", s.authRequired(), s.handleUnlikePost)
		api.GET("/posts/:id/comments", s.handlePostComments)
		api.POST("/posts/:id/comments", s.authRequired(), s.handleAddComment)
		api.DELETE("/comments/:id", s.authRequired(), s.handleDeleteComment)
		api.POST("/comments/:id/like", s.authRequired(), s.handleLikeComment)
		api.DELETE("/comments/:id/like", s.authRequired(), s.handleUnlikeComment)

		api.GET("/messages/contacts", s.authRequired(), s.handleContacts)
		api.GET("/messages/:userId", s.authRequired(), s.handleConversation)
		api.POST("/messages/:userId", s.authRequired(), s.handleSendMessage)
		api.POST("/messages/:userId/read", s.authRequired(), s.handleMarkRead)
		api.GET("/messages/:userId/unread", s.authRequired(), s.handleUnreadCount)

		api.POST("/assistant/chat", s.authRequired(), s.handleAssistantChat)
		api.GET("/assistant/history", s.authRequired(), s.handleAssistantHistory)
		api.DELETE("/assistant/history", s.authRequired(), s.handleAssistantClear)
	}

	s.router = router
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// respondError maps domain error kinds to HTTP status codes
func (s *Server) respondError(c *gin.Context, err error) {
	var status int
	switch errors.KindOf(err) {
	case errors.KindNotFound:
		status = http.StatusNotFound
	case errors.KindNotAuthorized:
		status = http.StatusForbidden
	case errors.KindDuplicateEmail:
		status = http.StatusConflict
	case errors.KindInvalidCredentials:
		status = http.StatusUnauthorized
	case errors.KindEmptyContent:
		status = http.StatusBadRequest
	default:
		s.logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// corsMiddleware allows the web client to talk to the API from any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
