package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plazadecomidas/auth-service/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OwnerUC *usecase.OwnerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.OwnerUC)
	users.Post("/create-owner", userHandler.CreateOwner)
	users.Get("/is-owner", userHandler.IsOwner)
}
