package ports

// PasswordHasher define el puerto de salida para el hash de credenciales.
// Cualquier adaptador (bcrypt, mock de test) debe implementar esta interfaz.
// Es una función de un solo sentido: el dominio nunca necesita invertirla.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}
