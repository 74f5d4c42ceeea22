package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una cuenta (multi-tenant).
// Code es único por cuenta entre productos activos; Code y UserAccountID son
// inmutables después de la creación. DeletedAt nil significa activo: el borrado
// es lógico y todo read path debe excluir filas con DeletedAt distinto de nil.
type Product struct {
	ID            string
	UserAccountID string
	Name          string
	Code          string
	Price         decimal.Decimal
	Stock         *Stock // exactamente un Stock por producto (1:1)
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Active indica si el producto no fue borrado lógicamente.
func (p *Product) Active() bool {
	return p.DeletedAt == nil
}
