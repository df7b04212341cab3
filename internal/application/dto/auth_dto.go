package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO usuario sin campos sensibles.
type UserDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string  `json:"token"`
	Role  string  `json:"role"`
	User  UserDTO `json:"user"`
}

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
