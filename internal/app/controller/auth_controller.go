package controller

import (
	"errors"
	"net/http"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	apperrors "github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthController handles the admin login flow. The session cookie it
// issues is the only credential the admin surface accepts.
type AuthController struct {
	authService service.AuthService
	session     config.SessionConfig
}

func NewAuthController(authService service.AuthService, session config.SessionConfig) *AuthController {
	return &AuthController{
		authService: authService,
		session:     session,
	}
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}

// Login verifies credentials and sets the session cookie. A form post
// carrying "next" is redirected back where the gate bounced it from.
// POST /admin/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login rejected", map[string]interface{}{
				"email": req.Email,
			})
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("Login failed", err, nil)
		apperrors.InternalError(c, "Login failed")
		return
	}

	maxAge := int(ctrl.session.TTL.Seconds())
	c.SetCookie(ctrl.session.CookieName, token, maxAge, "/", "", false, true)

	if req.Next != "" && req.Next[0] == '/' {
		c.Redirect(http.StatusFound, req.Next)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
	})
}

// Logout discards the session and clears the cookie.
// POST /admin/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if cookie, err := c.Cookie(ctrl.session.CookieName); err == nil {
		if err := ctrl.authService.Logout(c.Request.Context(), cookie); err != nil {
			log.Warn("Failed to discard session", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	c.SetCookie(ctrl.session.CookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// Me returns the logged-in admin user.
// GET /admin/me
func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "Login required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"is_staff":     user.IsStaff,
			"is_superuser": user.IsSuperuser,
		},
	})
}
