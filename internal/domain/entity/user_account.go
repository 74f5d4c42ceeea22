package entity

import "time"

// UserAccount representa la cuenta dueña de un conjunto de productos.
// Email es único global; PasswordHash es bcrypt, nunca texto plano.
type UserAccount struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
