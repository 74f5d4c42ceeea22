package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// StockRepository define el puerto para el registro de existencias.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Create(stock *entity.Stock) error
	// GetForUpdate obtiene el stock del producto bloqueando la fila
	// (SELECT FOR UPDATE). Devuelve nil si el producto no tiene stock.
	GetForUpdate(productID string) (*entity.Stock, error)
	// UpdateQuantity persiste la nueva cantidad calculada por el ledger.
	UpdateQuantity(stockID string, quantity int64) error
}
