package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"giftshop/entity"
	"giftshop/middlewares"
	"giftshop/repository"
	"giftshop/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.AdminUser{}, &entity.Category{}, &entity.Product{}))
	return db
}

// newTestServer wires the same route table main uses, minus the login
// throttle so tests can log in freely.
func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(sessions.Sessions("giftshop_session", memstore.NewStore([]byte("test-secret"))))

	adminRepo := repository.NewAdminRepository(db)
	sessionsCtrl := NewSessionsController(services.NewAuthService(adminRepo))
	adminsCtrl := NewAdminsController(services.NewAdminService(adminRepo))
	homeCtrl := NewHomeController(db)
	storefrontCtrl := NewStorefrontController()
	healthCtrl := NewHealthController(db)

	r.GET("/", storefrontCtrl.Home)
	r.GET("/up", healthCtrl.Up)

	admin := r.Group("/admin")
	{
		admin.GET("/login", sessionsCtrl.New)
		admin.POST("/login", sessionsCtrl.Create)
		admin.DELETE("/logout", sessionsCtrl.Destroy)

		authed := admin.Group("", middlewares.RequireAdmin(db))
		{
			authed.GET("", homeCtrl.Index)
			authed.GET("/admins", adminsCtrl.Index)

			owner := authed.Group("", middlewares.RequireOwner())
			{
				owner.GET("/admins/new", adminsCtrl.New)
				owner.POST("/admins", adminsCtrl.Create)
				owner.DELETE("/admins/:id", adminsCtrl.Destroy)
			}
		}
	}

	return middlewares.MethodOverride(r), db
}

func seedAdmin(t *testing.T, db *gorm.DB, name, username string, level int) *entity.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := entity.AdminUser{
		Name:            name,
		Username:        username,
		Email:           username + "@admin.com",
		PasswordDigest:  string(hash),
		PermissionLevel: level,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func doRequest(handler http.Handler, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// login posts credentials and returns the session cookies.
func login(t *testing.T, handler http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	rec := doRequest(handler, http.MethodPost, "/admin/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	return rec.Result().Cookies()
}
