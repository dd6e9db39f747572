package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"giftshop/pkg/flash"
	"giftshop/repository"
	"giftshop/services"
	"giftshop/utils"

	"github.com/gin-gonic/gin"
)

// CreateAdminRequest mirrors the creation form. Single definition on
// purpose: the field names here are the ones the form actually submits.
type CreateAdminRequest struct {
	Name                 string `form:"name"`
	Username             string `form:"username"`
	Email                string `form:"email"`
	Password             string `form:"password"`
	PasswordConfirmation string `form:"password_confirmation"`
	PermissionLevel      int    `form:"permission_level"`
}

type AdminsController struct {
	Service *services.AdminService
}

func NewAdminsController(service *services.AdminService) *AdminsController {
	return &AdminsController{Service: service}
}

// GET /admin/admins
func (ac *AdminsController) Index(c *gin.Context) {
	admins, err := ac.Service.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "admins_index.html", gin.H{
		"Admins":       admins,
		"CurrentAdmin": utils.CurrentAdmin(c),
		"ActiveMenu":   "admins",
		"Flash":        flash.Take(c),
	})
}

// GET /admin/admins/new
func (ac *AdminsController) New(c *gin.Context) {
	c.HTML(http.StatusOK, "admins_new.html", gin.H{
		"CurrentAdmin": utils.CurrentAdmin(c),
		"ActiveMenu":   "admins",
		"Form":         CreateAdminRequest{},
		"Errors":       services.ValidationErrors{},
	})
}

// POST /admin/admins
func (ac *AdminsController) Create(c *gin.Context) {
	var req CreateAdminRequest
	// Bind errors fall through to service validation, which reports
	// them per field instead of as a 400.
	_ = c.ShouldBind(&req)

	_, err := ac.Service.Create(services.CreateAdminInput{
		Name:                 req.Name,
		Username:             req.Username,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		PermissionLevel:      req.PermissionLevel,
	})

	switch {
	case err == nil:
		flash.Notice(c, "Admin created successfully.")
		c.Redirect(http.StatusSeeOther, "/admin/admins")

	case errors.Is(err, services.ErrOwnerCreateForbidden):
		flash.Alert(c, "Cannot create another owner-level admin.")
		c.Redirect(http.StatusSeeOther, "/admin/admins")

	case errors.Is(err, services.ErrRoleLimitReached):
		flash.Alert(c, "Maximum number of admins reached for this role.")
		c.Redirect(http.StatusSeeOther, "/admin/admins")

	default:
		var verrs services.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusUnprocessableEntity, "admins_new.html", gin.H{
				"CurrentAdmin": utils.CurrentAdmin(c),
				"ActiveMenu":   "admins",
				"Form":         req,
				"Errors":       verrs,
			})
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
	}
}

// DELETE /admin/admins/:id
func (ac *AdminsController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Admin not found")
		return
	}

	_, err = ac.Service.Destroy(uint(id))

	switch {
	case err == nil:
		flash.Notice(c, "Admin deleted successfully.")
		c.Redirect(http.StatusSeeOther, "/admin/admins")

	case errors.Is(err, services.ErrOwnerDeleteForbidden):
		flash.Alert(c, "Cannot delete the owner-level admin.")
		c.Redirect(http.StatusSeeOther, "/admin/admins")

	case errors.Is(err, repository.ErrAdminNotFound):
		c.String(http.StatusNotFound, "Admin not found")

	default:
		c.String(http.StatusInternalServerError, "Something went wrong")
	}
}
