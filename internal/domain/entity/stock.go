package entity

import "time"

// Stock es el registro de existencias de un producto (1:1 con Product).
// Quantity se mantiene en [0, domain.MaxProductStock] y solo se modifica a
// través del ledger, nunca por asignación directa desde otra capa.
type Stock struct {
	ID        string
	ProductID string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
