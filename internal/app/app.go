package app

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/config"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/db"
	httpdelivery "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http"
)

type App struct {
	f    *fiber.App
	port string
}

func New() *App {
	cfg := config.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	f := fiber.New(fiber.Config{
		AppName: "raga-jaya-amerta-backend",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, pool, log)

	return &App{f: f, port: cfg.Port}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.port)
}
