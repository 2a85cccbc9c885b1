package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plazadecomidas/auth-service/internal/domain/entity"
)

// catálogo estático de roles de la plataforma.
var roleCatalog = []entity.Role{
	{Name: entity.RoleAdministrador, Description: "Gestiona toda la plataforma"},
	{Name: entity.RolePropietario, Description: "Administra su propio restaurante"},
	{Name: entity.RoleEmpleado, Description: "Atiende pedidos y gestiona operaciones"},
	{Name: entity.RoleCliente, Description: "Realiza pedidos y consulta menús"},
}

// EnsureRoles siembra el catálogo de roles si aún no existe. Es idempotente:
// el ON CONFLICT deja intactos los roles ya creados, incluidos sus IDs.
func EnsureRoles(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		INSERT INTO roles (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`
	for _, role := range roleCatalog {
		if _, err := pool.Exec(ctx, query, role.Name, role.Description); err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
