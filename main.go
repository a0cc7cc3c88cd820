package main

import (
	"fmt"

	"github.com/quark1412/FoodyRush-sub000/configs"
	"github.com/quark1412/FoodyRush-sub000/middlewares"
	"github.com/quark1412/FoodyRush-sub000/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedRoles(); err != nil {
		logrus.WithError(err).Fatal("seed roles failed")
	}
	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("seed admin failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
