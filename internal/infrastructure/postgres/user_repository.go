package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plazadecomidas/auth-service/internal/domain"
	"github.com/plazadecomidas/auth-service/internal/domain/entity"
	"github.com/plazadecomidas/auth-service/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Save inserta el usuario y devuelve la copia durable con el ID que asigna la
// base de datos. Una violación de constraint único se traduce al mismo error
// de "ya existe" que produce la pre-verificación.
func (r *UserRepo) Save(user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, last_name, document, phone, email, password_hash, birth_date, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	saved := *user
	err := r.pool.QueryRow(context.Background(), query,
		user.Name, user.LastName, user.Document, user.Phone, user.Email,
		user.PasswordHash, user.BirthDate, user.RoleID,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		if field, ok := uniqueViolation(err); ok {
			return nil, domain.NewAlreadyExists(field, valueFor(user, field))
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &saved, nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(id int64) (*entity.User, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por correo; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.findOne(`WHERE email = $1`, email)
}

// FindByPhone obtiene un usuario por celular; (nil, nil) si no existe.
func (r *UserRepo) FindByPhone(phone string) (*entity.User, error) {
	return r.findOne(`WHERE phone = $1`, phone)
}

// FindByDocument obtiene un usuario por documento de identidad; (nil, nil) si no existe.
func (r *UserRepo) FindByDocument(document string) (*entity.User, error) {
	return r.findOne(`WHERE document = $1`, document)
}

func (r *UserRepo) findOne(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, name, last_name, document, phone, email, password_hash, birth_date, role_id, created_at
		FROM users ` + where
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.LastName, &u.Document, &u.Phone, &u.Email,
		&u.PasswordHash, &u.BirthDate, &u.RoleID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func valueFor(user *entity.User, field domain.Field) string {
	switch field {
	case domain.FieldPhone:
		return user.Phone
	case domain.FieldDocument:
		return user.Document
	default:
		return user.Email
	}
}
