package middleware

import (
	"net/http"
	"net/url"

	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the resolved admin user.
const CurrentUserKey = "current_user"

// AdminGate protects the admin surface with the session cookie. Requests
// without a valid session are redirected to the login page; authenticated
// users without staff rights get a plain 404 so the admin panel stays
// invisible to them.
type AdminGate struct {
	auth       service.AuthService
	cookieName string
	loginPath  string
}

func NewAdminGate(auth service.AuthService, cookieName, loginPath string) *AdminGate {
	return &AdminGate{
		auth:       auth,
		cookieName: cookieName,
		loginPath:  loginPath,
	}
}

func (m *AdminGate) redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, m.loginPath+"?next="+next)
	c.Abort()
}

// RequireStaff is the gate itself.
func (m *AdminGate) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie == "" {
			log.Debug("No session cookie, redirecting to login", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			m.redirectToLogin(c)
			return
		}

		user, err := m.auth.ResolveSession(c.Request.Context(), cookie)
		if err != nil {
			log.Warn("Session resolution failed, redirecting to login", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			m.redirectToLogin(c)
			return
		}

		if !user.CanAccessAdmin() {
			log.Warn("Non-staff user tried to reach admin", map[string]interface{}{
				"user_id": user.ID,
				"path":    c.Request.URL.Path,
			})
			errors.NotFound(c, errors.ResourceNotFound, "Resource not found")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)

		log.Debug("Admin request authorized", map[string]interface{}{
			"user_id": user.ID,
		})
		c.Next()
	}
}

// CurrentUser returns the admin user the gate stored on the context.
func CurrentUser(c *gin.Context) *model.User {
	if value, exists := c.Get(CurrentUserKey); exists {
		if user, ok := value.(*model.User); ok {
			return user
		}
	}
	return nil
}
