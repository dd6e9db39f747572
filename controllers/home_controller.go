package controllers

import (
	"net/http"

	"giftshop/entity"
	"giftshop/pkg/flash"
	"giftshop/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

// GET /admin — dashboard with rough totals.
func (hc *HomeController) Index(c *gin.Context) {
	var totalAdmins int64
	var totalCategories int64
	var totalProducts int64

	if err := hc.DB.Model(&entity.AdminUser{}).Count(&totalAdmins).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	if err := hc.DB.Model(&entity.Category{}).Count(&totalCategories).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	if err := hc.DB.Model(&entity.Product{}).Count(&totalProducts).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "admin_home.html", gin.H{
		"CurrentAdmin":    utils.CurrentAdmin(c),
		"ActiveMenu":      "home",
		"TotalAdmins":     totalAdmins,
		"TotalCategories": totalCategories,
		"TotalProducts":   totalProducts,
		"Flash":           flash.Take(c),
	})
}
