package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/model"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/coimpres/coimpres-backend/internal/session"
	"github.com/coimpres/coimpres-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCookieName = "admin_session"

func setupAuthControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	sessionCfg := config.SessionConfig{
		Secret:     "test-session-secret",
		TTL:        time.Hour,
		CookieName: testCookieName,
	}

	authService := service.NewAuthService(
		repository.NewUserRepository(testDB),
		session.NewMemoryStore(),
		sessionCfg.Secret,
		sessionCfg.TTL,
	)

	ctrl := NewAuthController(authService, sessionCfg)
	gate := middleware.NewAdminGate(authService, testCookieName, "/admin/login")

	router := gin.New()
	router.POST("/admin/login", ctrl.Login)
	router.POST("/admin/logout", ctrl.Logout)

	admin := router.Group("/admin", gate.RequireStaff())
	admin.GET("/me", ctrl.Me)
	admin.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, testDB
}

func createUser(t *testing.T, testDB *gorm.DB, email, password string, isStaff bool) *model.User {
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{Email: email, PasswordHash: hash, IsStaff: isStaff}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func loginForm(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAuthController_Login_SetsSessionCookie(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	createUser(t, testDB, "admin@coimpres.com", "s3cret", true)

	w := loginForm(t, router, "admin@coimpres.com", "s3cret")

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	createUser(t, testDB, "admin@coimpres.com", "s3cret", true)

	w := loginForm(t, router, "admin@coimpres.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = loginForm(t, router, "nobody@coimpres.com", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Login_RedirectsToNext(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	createUser(t, testDB, "admin@coimpres.com", "s3cret", true)

	form := url.Values{}
	form.Set("email", "admin@coimpres.com")
	form.Set("password", "s3cret")
	form.Set("next", "/admin/products")

	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/products", w.Header().Get("Location"))
}

func TestAdminGate_NoSessionRedirectsToLogin(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/admin/login?next="), "unexpected redirect: %s", location)
	assert.Contains(t, location, url.QueryEscape("/admin/dashboard"))
}

func TestAdminGate_GarbageCookieRedirectsToLogin(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAuthController_Login_NonStaffRejected(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	createUser(t, testDB, "user@coimpres.com", "s3cret", false)

	// Same response as a bad password; no cookie is issued.
	w := loginForm(t, router, "user@coimpres.com", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminGate_NonStaffGets404(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	user := createUser(t, testDB, "user@coimpres.com", "s3cret", true)

	login := loginForm(t, router, "user@coimpres.com", "s3cret")
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	// Staff access revoked after login; the live session no longer helps.
	require.NoError(t, testDB.Model(user).Update("is_staff", false).Error)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The admin surface is invisible to non-staff users.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminGate_StaffPasses(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	user := createUser(t, testDB, "admin@coimpres.com", "s3cret", true)

	login := loginForm(t, router, "admin@coimpres.com", "s3cret")
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest("GET", "/admin/me", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

func TestAuthController_Logout_InvalidatesSession(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)
	createUser(t, testDB, "admin@coimpres.com", "s3cret", true)

	login := loginForm(t, router, "admin@coimpres.com", "s3cret")
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest("POST", "/admin/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The old cookie no longer opens the gate.
	req = httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
}
