package main

import (
	"go.uber.org/zap"

	"github.com/borsatogiordano/daily-diet-api/config"
	"github.com/borsatogiordano/daily-diet-api/controllers"
	"github.com/borsatogiordano/daily-diet-api/repositories"
	"github.com/borsatogiordano/daily-diet-api/routes"
	"github.com/borsatogiordano/daily-diet-api/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := config.Connect(cfg)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	mealRepo := repositories.NewMealRepository(db)

	userSvc := services.NewUserService(userRepo)
	mealSvc := services.NewMealService(mealRepo)
	summarySvc := services.NewSummaryService(mealRepo)

	userCtl := controllers.NewUserController(userSvc, cfg.SessionMaxAgeSec, logger)
	mealCtl := controllers.NewMealController(mealSvc, summarySvc, logger)

	r := routes.SetupRouter(logger, userRepo, userCtl, mealCtl)

	logger.Info("starting server", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
