// mockapi es el servidor de desarrollo: implementa el contrato REST del
// backend de inventario con repositorios en memoria para poder ejercitar
// la CLI sin el backend real.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/inventario-cli/internal/interfaces/http"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("locale", cfg.API.Locale).
		Msg("iniciando servidor de desarrollo")

	if cfg.JWT.Secret == "" {
		// Solo para desarrollo local; el servidor no está pensado para producción.
		cfg.JWT.Secret = "inventario-dev-secret"
		log.Warn().Msg("JWT_SECRET vacío, usando secret de desarrollo")
	}

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()
	suppliers := memory.NewSupplierRepository()
	if err := memory.Seed(users, products, suppliers); err != nil {
		log.Fatal().Err(err).Msg("cargar datos de desarrollo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Users:     users,
		Products:  products,
		Suppliers: suppliers,
		Locale:    dto.Locale(cfg.API.Locale),
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
