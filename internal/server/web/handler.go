package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/webauth/internal/common"
	"github.com/dmitrijs2005/webauth/internal/server/models"
)

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Number          string `json:"number" binding:"required,numeric,len=10"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6,alphanum,containsdigit"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,alphanum,containsdigit"`
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Number  string `json:"number" binding:"required,numeric,len=10"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "webauth-api",
	})
}

// handleRegister is the POST /api/register handler.
func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.validationError(c, err)
		return
	}

	user, err := s.sessions.Register(c.Request.Context(),
		req.Name, req.Number, normalizeEmail(req.Email), req.Password, req.ConfirmPassword)
	if err != nil {
		s.businessError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "account registered", "userID", user.ID)
	c.JSON(http.StatusCreated, user)
}

// handleLogin is the POST /api/login handler. On success the token is
// delivered in an HttpOnly session cookie.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.validationError(c, err)
		return
	}

	token, err := s.sessions.Login(c.Request.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		s.businessError(c, err)
		return
	}

	s.setSessionCookie(c, token, int(s.cfg.CookieMaxAge.Seconds()))
	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Logged in successfully!",
	})
}

// handleLogout is the GET /api/logout handler. It revokes exactly the
// presented token; other sessions of the same account stay alive.
func (s *Server) handleLogout(c *gin.Context) {
	user := c.MustGet(ContextUserKey).(*models.User)
	token := c.MustGet(ContextTokenKey).(string)

	if err := s.sessions.Logout(c.Request.Context(), user, token); err != nil {
		s.internalError(c, err)
		return
	}

	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Logged out successfully!",
	})
}

// handleGetAuthUser is the GET /api/getAuthUser handler.
func (s *Server) handleGetAuthUser(c *gin.Context) {
	user := c.MustGet(ContextUserKey).(*models.User)

	current, err := s.sessions.GetAuthUser(c.Request.Context(), user.ID)
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// handleContact is the POST /api/contact handler.
func (s *Server) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.validationError(c, err)
		return
	}

	contact, err := s.contacts.Submit(c.Request.Context(),
		req.Name, req.Number, normalizeEmail(req.Email), req.Message)
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// validationError reports binding failures field by field in the
// {"status": false, "message": [{"msg": ...}]} envelope.
func (s *Server) validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": []gin.H{{"msg": "Invalid request body"}},
		})
		return
	}

	msgs := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, gin.H{"msg": fieldErrorMessage(fe)})
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": msgs,
	})
}

// businessError maps service sentinels to user-safe responses. Anything
// outside the taxonomy is internal and stays opaque to the caller.
func (s *Server) businessError(c *gin.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, common.ErrorDuplicateEmail):
		msg = "Email already registered"
	case errors.Is(err, common.ErrorDuplicateNumber):
		msg = "Number already registered"
	case errors.Is(err, common.ErrorPasswordMismatch):
		msg = "Passwords don't match"
	case errors.Is(err, common.ErrorInvalidCredentials):
		msg = "Incorrect Email or Password"
	default:
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": []gin.H{{"msg": msg}},
	})
}

// internalError logs the cause and answers with a generic body: raw
// errors never reach the client.
func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), "internal error", "path", c.FullPath(), "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  false,
		"message": "Internal server error",
	})
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", s.cfg.GinMode == gin.ReleaseMode, true)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
