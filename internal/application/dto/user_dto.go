package dto

import "time"

// RegisterRequest entrada para crear una cuenta. El password vive solo en este
// view model para no exponerlo en las respuestas.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserAccountResponse salida de una cuenta (sin hash de password).
type UserAccountResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token emitido más la cuenta autenticada.
type LoginResponse struct {
	Token string              `json:"token"`
	User  UserAccountResponse `json:"user"`
}
