package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plazadecomidas/auth-service/internal/domain/entity"
	"github.com/plazadecomidas/auth-service/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// El catálogo es de solo lectura para la aplicación; lo escribe EnsureRoles.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de lectura del catálogo de roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// FindByName obtiene un rol por nombre; (nil, nil) si no existe.
func (r *RoleRepo) FindByName(name string) (*entity.Role, error) {
	return r.findOne(`WHERE name = $1`, name)
}

// FindByID obtiene un rol por ID; (nil, nil) si no existe.
func (r *RoleRepo) FindByID(id int64) (*entity.Role, error) {
	return r.findOne(`WHERE id = $1`, id)
}

func (r *RoleRepo) findOne(where string, arg any) (*entity.Role, error) {
	query := `SELECT id, name, description FROM roles ` + where
	var role entity.Role
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
