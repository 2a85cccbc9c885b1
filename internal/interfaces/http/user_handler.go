package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/plazadecomidas/auth-service/internal/application/dto"
	"github.com/plazadecomidas/auth-service/internal/application/usecase"
)

// UserHandler expone el registro de propietarios y la consulta de propiedad.
type UserHandler struct {
	uc *usecase.OwnerUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.OwnerUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateOwner godoc
// @Summary      Crear un nuevo propietario de restaurante
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOwnerRequest  true  "datos del propietario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/users/create-owner [post]
func (h *UserHandler) CreateOwner(c *fiber.Ctx) error {
	var in dto.CreateOwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.RegisterOwner(in)
	if err != nil {
		status, body := errorToResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// IsOwner godoc
// @Summary      Verificar si un usuario es propietario por su ID
// @Tags         usuarios
// @Produce      json
// @Param        userId  query  int  true  "ID del usuario a verificar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/users/is-owner [get]
func (h *UserHandler) IsOwner(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_USER_ID", Message: "userId debe ser numérico"})
	}
	user, err := h.uc.IsOwner(userID)
	if err != nil {
		status, body := errorToResponse(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(user)
}
