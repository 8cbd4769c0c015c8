package main

import (
	"lux/config"
	"lux/di"
	"lux/shared/logger"
)

// @title Lux API
// @version 1.0
// @description Hotel booking and front desk ERP backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
