// Package security implementa el puerto de hash de credenciales con bcrypt.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/plazadecomidas/auth-service/internal/application/ports"
)

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashea claves con bcrypt y sal aleatoria por llamada.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. cost <= 0 usa el costo por defecto de bcrypt.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de la clave en texto plano.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}
