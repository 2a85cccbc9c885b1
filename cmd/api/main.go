package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/plazadecomidas/auth-service/internal/application/usecase"
	"github.com/plazadecomidas/auth-service/internal/domain/repository"
	"github.com/plazadecomidas/auth-service/internal/infrastructure/cache"
	"github.com/plazadecomidas/auth-service/internal/infrastructure/postgres"
	"github.com/plazadecomidas/auth-service/internal/infrastructure/security"
	httpRouter "github.com/plazadecomidas/auth-service/internal/interfaces/http"
	"github.com/plazadecomidas/auth-service/pkg/config"
	"github.com/plazadecomidas/auth-service/pkg/logger"
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
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// El catálogo de roles debe existir antes de aceptar registros: su
	// ausencia se reporta al caller como defecto de sistema, no de entrada.
	if err := postgres.EnsureRoles(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo de roles")
	}

	userRepo := postgres.NewUserRepository(pool)

	var roleRepo repository.RoleRepository = postgres.NewRoleRepository(pool)
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, catálogo de roles sin caché")
		} else {
			ttl := time.Duration(cfg.Redis.TTLMinutes) * time.Minute
			roleRepo = cache.NewCachedRoleRepo(roleRepo, redisClient, ttl, log)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de roles habilitada")
		}
	}

	hasher := security.NewBcryptHasher(0)
	ownerUC := usecase.NewOwnerUseCase(userRepo, roleRepo, hasher)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Auth Service API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OwnerUC: ownerUC,
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

	log.Info().Msg("aplicación detenida")
}
