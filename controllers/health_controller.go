package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// GET /up — liveness probe for load balancers and uptime monitors.
func (hc *HealthController) Up(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err != nil {
		c.String(http.StatusInternalServerError, "unhealthy")
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.String(http.StatusInternalServerError, "unhealthy")
		return
	}
	c.String(http.StatusOK, "ok")
}
