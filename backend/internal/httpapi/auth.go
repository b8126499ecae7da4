package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"pulse/backend/internal/constants"
)

const userIDKey = "user_id"

// issueToken mints an HS256 bearer token for the user
func (s *Server) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(constants.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// authRequired validates the Authorization header and stores the caller's
// user ID on the request context. Only HS256 tokens are accepted.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenStr := strings.TrimSpace(header[7:])
		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(s.cfg.JWTSecret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// currentUserID returns the authenticated caller's user ID
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func (s *Server) handleRegister(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.social.Register(req.Email, req.Name, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.session.Save(user); err != nil {
		s.logger.Warn("Failed to persist session", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.social.Authenticate(req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.session.Save(user); err != nil {
		s.logger.Warn("Failed to persist session", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.session.Clear(); err != nil {
		s.logger.Warn("Failed to clear session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
