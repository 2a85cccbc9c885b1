package dto

import "time"

// CreateOwnerRequest entrada para registrar un propietario de restaurante.
// La clave llega en texto plano y se hashea en el caso de uso; la fecha de
// nacimiento llega como string YYYY-MM-DD y se valida antes de parsearse.
type CreateOwnerRequest struct {
	Name      string `json:"nombre"`
	LastName  string `json:"apellido"`
	Document  string `json:"documento_de_identidad"`
	Phone     string `json:"celular"`
	Email     string `json:"correo"`
	Password  string `json:"clave"`
	BirthDate string `json:"fecha_de_nacimiento"`
}

// UserResponse salida de un usuario (sin clave ni hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Document  string    `json:"documento_de_identidad"`
	Phone     string    `json:"celular"`
	Email     string    `json:"correo"`
	BirthDate string    `json:"fecha_de_nacimiento"`
	Role      RoleDTO   `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleDTO rol poblado en la respuesta.
type RoleDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}
