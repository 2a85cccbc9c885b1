package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/plazadecomidas/auth-service/internal/domain"
)

// uniqueViolation extrae la violación de constraint único (23505) de un error
// de pgx y devuelve el campo en conflicto según el nombre del constraint.
// El constraint del almacén es el respaldo real de la unicidad: una carrera
// que pase la pre-verificación del caso de uso aterriza aquí.
func uniqueViolation(err error) (domain.Field, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domain.FieldEmail, true
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return domain.FieldPhone, true
	case strings.Contains(pgErr.ConstraintName, "document"):
		return domain.FieldDocument, true
	default:
		return domain.FieldEmail, true
	}
}
