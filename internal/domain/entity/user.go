package entity

import "time"

// User representa una cuenta de la plataforma. Antes de registrarse es un
// candidato transitorio (sin ID y sin rol); la base de datos asigna el ID una
// sola vez en el insert y el registro nunca se actualiza después.
type User struct {
	ID           int64
	Name         string
	LastName     string
	Document     string // documento de identidad, solo dígitos
	Phone        string
	Email        string
	PasswordHash string // bcrypt hash, nunca la clave en texto plano una vez persistido
	BirthDate    time.Time
	RoleID       int64
	Role         *Role // poblado por el caso de uso, no por el repositorio de usuarios
	CreatedAt    time.Time
}

// WithRole devuelve una copia del usuario con el rol poblado. El valor
// original no se muta; un usuario persistido nunca cambia de ID ni de rol.
func (u User) WithRole(role *Role) *User {
	u.Role = role
	if role != nil {
		u.RoleID = role.ID
	}
	return &u
}
