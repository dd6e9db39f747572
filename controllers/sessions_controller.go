package controllers

import (
	"errors"
	"net/http"

	"giftshop/middlewares"
	"giftshop/pkg/flash"
	"giftshop/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type SessionsController struct {
	Auth *services.AuthService
}

func NewSessionsController(auth *services.AuthService) *SessionsController {
	return &SessionsController{Auth: auth}
}

// GET /admin/login
func (sc *SessionsController) New(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flash":    flash.Take(c),
		"Username": "",
	})
}

// POST /admin/login
func (sc *SessionsController) Create(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := sc.Auth.Login(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same message for unknown username and wrong password.
			c.HTML(http.StatusOK, "admin_login.html", gin.H{
				"Error":    "Invalid username or password",
				"Username": username,
			})
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middlewares.SessionAdminKey, admin.ID)
	if err := sess.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	flash.Notice(c, "Logged in as "+admin.Username)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DELETE /admin/logout
func (sc *SessionsController) Destroy(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(middlewares.SessionAdminKey)
	_ = sess.Save()

	flash.Notice(c, "Logged out successfully")
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
