package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrEmailExists   = errors.New("el email ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicateCode = errors.New("ya existe un producto con ese código")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrConflict      = errors.New("conflicto de escritura concurrente")
)

// BoundKind indica cuál límite del stock se violaría.
type BoundKind string

const (
	Overflow  BoundKind = "OVERFLOW"
	Underflow BoundKind = "UNDERFLOW"
)

// OutOfBoundsError indica que una operación dejaría la cantidad de stock fuera
// de [0, MaxProductStock]. AllowedRemaining es cuánto sí se puede mover en la
// dirección pedida, para que el caller arme un mensaje accionable sin recalcular.
type OutOfBoundsError struct {
	Kind             BoundKind
	AllowedRemaining int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Kind == Overflow {
		return fmt.Sprintf("solo se pueden agregar %d unidades más", e.AllowedRemaining)
	}
	return fmt.Sprintf("stock insuficiente, solo se pueden retirar %d unidades", e.AllowedRemaining)
}
