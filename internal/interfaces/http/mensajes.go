package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/plazadecomidas/auth-service/internal/application/dto"
	"github.com/plazadecomidas/auth-service/internal/domain"
)

// Catálogo de mensajes en español. El dominio solo produce identidad de error
// (tipo + campo); la traducción a mensaje legible y status HTTP vive aquí,
// en la frontera.
var (
	missingFieldMessages = map[domain.Field]string{
		domain.FieldName:      "El nombre es obligatorio",
		domain.FieldLastName:  "El apellido es obligatorio",
		domain.FieldDocument:  "El número de documento es obligatorio",
		domain.FieldPhone:     "El número de celular es obligatorio",
		domain.FieldEmail:     "El Correo es obligatorio",
		domain.FieldPassword:  "La contraseña es obligatoria",
		domain.FieldBirthDate: "La fecha de nacimiento es obligatoria",
	}

	invalidFormatMessages = map[domain.Field]string{
		domain.FieldDocument:  "El número de documento debe contener solo números",
		domain.FieldPhone:     "El número de celular debe tener un máximo de 13 caracteres y puede iniciar con '+'. Por ejemplo: +573005698325.",
		domain.FieldEmail:     "El Correo debe tener un formato válido",
		domain.FieldBirthDate: "La fecha de nacimiento debe tener el formato 'YYYY-MM-DD'",
	}

	alreadyExistsMessages = map[domain.Field]string{
		domain.FieldEmail:    "Ya existe un usuario con el correo electrónico: %s",
		domain.FieldPhone:    "Ya existe un usuario con el número de celular: %s",
		domain.FieldDocument: "Ya existe un usuario con el número de documento de identidad: %s",
	}
)

// errorToResponse traduce un error de dominio a status HTTP + cuerpo de error.
// MissingField/InvalidFormat/temporales → 400, AlreadyExists → 409,
// no-encontrados → 404, el resto → 500.
func errorToResponse(err error) (int, dto.ErrorResponse) {
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "MISSING_FIELD",
			Message: missingFieldMessages[missing.Field],
		}
	}
	var format *domain.InvalidFormatError
	if errors.As(err, &format) {
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "INVALID_FORMAT",
			Message: invalidFormatMessages[format.Field],
		}
	}
	var exists *domain.AlreadyExistsError
	if errors.As(err, &exists) {
		return fiber.StatusConflict, dto.ErrorResponse{
			Code:    "ALREADY_EXISTS",
			Message: fmt.Sprintf(alreadyExistsMessages[exists.Field], exists.Value),
		}
	}
	switch {
	case errors.Is(err, domain.ErrBirthDateInFuture):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "BIRTHDATE_FUTURE",
			Message: "La fecha de nacimiento debe ser una fecha pasada",
		}
	case errors.Is(err, domain.ErrUnderage):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "BIRTHDATE_ADULT",
			Message: "La persona debe ser mayor de edad (18 años)",
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Usuario no encontrado",
		}
	case errors.Is(err, domain.ErrRoleNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{
			Code:    "ROLE_NOT_FOUND",
			Message: "El rol 'PROPIETARIO' no se encontró en el sistema.",
		}
	case errors.Is(err, domain.ErrUserNotSaved):
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Code:    "NOT_SAVED",
			Message: "El usuario no pudo ser guardado",
		}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error interno del servidor",
		}
	}
}
