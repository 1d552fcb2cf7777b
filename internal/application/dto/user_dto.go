package dto

// RegisterRequest entrada para registro: los tres campos son obligatorios.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario: nunca incluye el hash de password.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse salida de POST /api/register.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse salida de POST /api/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse salida de GET /api/profile.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}
