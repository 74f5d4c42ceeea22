package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRequest cantidad inicial de stock al crear un producto.
// El tope (domain.MaxProductStock) se valida en el caso de uso con la misma
// constante que usa el ledger.
type StockRequest struct {
	Quantity int64 `json:"quantity" validate:"min=0"`
}

// CreateProductRequest entrada para crear un producto con su stock inicial.
type CreateProductRequest struct {
	Name  string           `json:"name" validate:"required,max=254"`
	Code  string           `json:"code" validate:"required,max=50"`
	Price *decimal.Decimal `json:"price" validate:"required"`
	Stock *StockRequest    `json:"stock" validate:"required"`
}

// EditProductRequest entrada para editar un producto. Solo name y price son
// editables; code, dueño y stock son inmutables por esta vía.
type EditProductRequest struct {
	Name  string           `json:"name" validate:"required,max=254"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// AlterStockRequest entrada para una operación de entrada/salida de stock.
type AlterStockRequest struct {
	Operation string `json:"operation" validate:"required,oneof=ADD SUB"`
	Quantity  int64  `json:"quantity" validate:"min=0"`
}

// StockResponse snapshot de la cantidad en stock (solo lectura).
type StockResponse struct {
	Quantity int64 `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Price     decimal.Decimal `json:"price"`
	Stock     *StockResponse  `json:"stock,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
