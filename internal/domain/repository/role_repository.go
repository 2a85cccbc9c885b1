package repository

import "github.com/plazadecomidas/auth-service/internal/domain/entity"

// RoleRepository define el puerto de lectura del catálogo de roles.
// El catálogo se siembra fuera del core; aquí solo se consulta.
// (nil, nil) significa que el rol no existe.
type RoleRepository interface {
	FindByName(name string) (*entity.Role, error)
	FindByID(id int64) (*entity.Role, error)
}
