package main

import (
	"fmt"
	"net/http"

	"giftshop/configs"
	"giftshop/middlewares"
	"giftshop/pkg/logger"
	"giftshop/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.InitLogger()

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedOwner(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed owner failed")
	}
	if cfg.SeedDev {
		if err := configs.SeedDev(); err != nil {
			log.Fatal().Err(err).Msg("dev seed failed")
		}
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob("templates/*.html")

	routes.RegisterRoutes(r, cfg, log)

	// _method override must see the request before gin routes it
	handler := middlewares.MethodOverride(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
