package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool
// o tx). La cantidad solo se escribe con el valor que calculó el ledger.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste el registro de stock de un producto (misma tx que el insert
// del producto).
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.Quantity, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock del producto y bloquea la fila
// (SELECT FOR UPDATE). Dos ajustes concurrentes sobre el mismo producto se
// serializan aquí; productos distintos no se bloquean entre sí.
func (r *StockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, quantity, created_at, updated_at
		FROM stock WHERE product_id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// UpdateQuantity persiste la nueva cantidad calculada por el ledger.
func (r *StockRepo) UpdateQuantity(stockID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock SET quantity = $2, updated_at = now() WHERE id = $1`,
		stockID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}
