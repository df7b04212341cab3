package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
	RoleUser  = "user"
)

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSales || role == RoleUser
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, sales, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
