package middlewares

import (
	"net/http"

	"giftshop/entity"
	"giftshop/pkg/flash"
	"giftshop/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionAdminKey is the only payload the session carries.
const SessionAdminKey = "admin_id"

// RequireAdmin resolves the logged-in admin from the session and loads
// the record fresh on every request, so a demotion takes effect on the
// very next click. Missing or stale sessions bounce to the login page,
// never a hard error.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		id, ok := sess.Get(SessionAdminKey).(uint)
		if !ok {
			redirectToLogin(c)
			return
		}

		var admin entity.AdminUser
		if err := db.First(&admin, id).Error; err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(utils.CtxAdminKey, &admin)
		c.Next()
	}
}

// RequireOwner gates the owner-only admin-management actions. It runs
// after RequireAdmin so the admin is already on the context.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := utils.CurrentAdmin(c)
		if admin == nil || !admin.IsOwner() {
			flash.Alert(c, "You are not allowed to perform this action.")
			c.Redirect(http.StatusSeeOther, "/admin/admins")
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	flash.Alert(c, "Please log in to access the admin panel.")
	c.Redirect(http.StatusSeeOther, "/admin/login")
	c.Abort()
}
