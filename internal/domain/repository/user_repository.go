package repository

import "github.com/plazadecomidas/auth-service/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia; un error
// solo indica falla de infraestructura.
type UserRepository interface {
	// Save inserta el usuario y devuelve la copia durable con ID asignado.
	// (nil, nil) señala que el almacén no produjo registro.
	Save(user *entity.User) (*entity.User, error)
	FindByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindByPhone(phone string) (*entity.User, error)
	FindByDocument(document string) (*entity.User, error)
}
