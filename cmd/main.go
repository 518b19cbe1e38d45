package main

import (
	"context"
	"time"

	"github.com/Reynaldo-Martinez2021/Bet-Mate/config"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/db"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/handler"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/mailer"
	repo "github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/repository/postgres"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	store := repo.NewPostgresRepository(pool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	dispatcher := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUsername,
		cfg.EmailPassword, cfg.ResetBaseURL)
	userService := service.NewUserService(store, tokenService, dispatcher)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	}))
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
