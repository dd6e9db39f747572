package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StorefrontController is the public side of the shop. Only the root
// page exists so far; product browsing comes later.
type StorefrontController struct{}

func NewStorefrontController() *StorefrontController {
	return &StorefrontController{}
}

// GET /
func (sc *StorefrontController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "storefront_home.html", gin.H{})
}
