package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Context keys shared between the auth middleware and handlers.
const (
	ContextUserKey  = "auth.user"
	ContextTokenKey = "auth.token"
)

// requireAuth verifies the session cookie and resolves it to an account.
// Every failure (missing cookie, bad signature, revoked token, deleted
// account) gets the same uniform response; the real reason goes to the
// log only.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)

		user, err := s.sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authentication failed", "reason", err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"status":  false,
				"message": "No token provided",
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
