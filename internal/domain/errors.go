package domain

import (
	"errors"
	"fmt"
)

// Field identifica el campo del candidato al que se refiere un error de
// validación o de unicidad. Los valores coinciden con los nombres JSON de la
// API pública.
type Field string

// Campos del registro de propietario.
const (
	FieldName      Field = "nombre"
	FieldLastName  Field = "apellido"
	FieldDocument  Field = "documento_de_identidad"
	FieldPhone     Field = "celular"
	FieldEmail     Field = "correo"
	FieldPassword  Field = "clave"
	FieldBirthDate Field = "fecha_de_nacimiento"
)

// Errores de dominio (sin dependencias externas). Los mensajes legibles en
// español viven en el catálogo de la capa HTTP; aquí solo hay identidad.
var (
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrRoleNotFound      = errors.New("rol no encontrado en el catálogo")
	ErrUserNotSaved      = errors.New("el usuario no pudo ser guardado")
	ErrBirthDateInFuture = errors.New("fecha de nacimiento en el futuro")
	ErrUnderage          = errors.New("el usuario es menor de edad")
)

// MissingFieldError indica que un campo obligatorio llegó vacío.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo obligatorio: %s", e.Field)
}

// InvalidFormatError indica que un campo no cumple su forma esperada
// (documento no numérico, celular, correo o fecha mal formados).
type InvalidFormatError struct {
	Field Field
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("formato inválido: %s", e.Field)
}

// AlreadyExistsError indica que correo, celular o documento ya están
// registrados. Value lleva el valor en conflicto.
type AlreadyExistsError struct {
	Field Field
	Value string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("ya existe un usuario con %s: %s", e.Field, e.Value)
}

// NewMissingField construye un MissingFieldError.
func NewMissingField(f Field) error { return &MissingFieldError{Field: f} }

// NewInvalidFormat construye un InvalidFormatError.
func NewInvalidFormat(f Field) error { return &InvalidFormatError{Field: f} }

// NewAlreadyExists construye un AlreadyExistsError con el valor en conflicto.
func NewAlreadyExists(f Field, value string) error {
	return &AlreadyExistsError{Field: f, Value: value}
}
