package entity

// Nombres del catálogo de roles. El catálogo se siembra al iniciar la
// aplicación y es inmutable en tiempo de ejecución.
const (
	RoleAdministrador = "ADMINISTRADOR"
	RolePropietario   = "PROPIETARIO"
	RoleEmpleado      = "EMPLEADO"
	RoleCliente       = "CLIENTE"
)

// Role es una entrada del catálogo de roles. El ID lo asigna la base de datos
// al sembrar el catálogo; después de eso la entidad nunca cambia.
type Role struct {
	ID          int64
	Name        string
	Description string
}
