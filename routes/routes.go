package routes

import (
	"time"

	"giftshop/configs"
	"giftshop/controllers"
	"giftshop/middlewares"
	"giftshop/repository"
	"giftshop/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, logger zerolog.Logger) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger(logger))

	// Server-side session store; the cookie only carries the token.
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("giftshop_session", store))

	db := configs.DB()

	// Controllers
	adminRepo := repository.NewAdminRepository(db)
	sessionsCtrl := controllers.NewSessionsController(services.NewAuthService(adminRepo))
	adminsCtrl := controllers.NewAdminsController(services.NewAdminService(adminRepo))
	homeCtrl := controllers.NewHomeController(db)
	storefrontCtrl := controllers.NewStorefrontController()
	healthCtrl := controllers.NewHealthController(db)

	// Public
	r.GET("/", storefrontCtrl.Home)
	r.GET("/up", healthCtrl.Up)

	loginLimit := middlewares.NewRateLimiter(rate.Every(time.Second), 5)

	admin := r.Group("/admin")
	{
		// Login/logout
		admin.GET("/login", sessionsCtrl.New)
		admin.POST("/login", loginLimit.Middleware(), sessionsCtrl.Create)
		admin.DELETE("/logout", sessionsCtrl.Destroy)

		// Everything below needs a live session
		authed := admin.Group("", middlewares.RequireAdmin(db))
		{
			authed.GET("", homeCtrl.Index)
			authed.GET("/admins", adminsCtrl.Index)

			// Admin CRUD is owner-only
			owner := authed.Group("", middlewares.RequireOwner())
			{
				owner.GET("/admins/new", adminsCtrl.New)
				owner.POST("/admins", adminsCtrl.Create)
				owner.DELETE("/admins/:id", adminsCtrl.Destroy)
			}
		}
	}
}
