package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// sortColumns lista blanca de campos ordenables hacia sus columnas. Campos
// desconocidos en el sort se ignoran; solo atributos escalares del producto.
var sortColumns = map[string]string{
	"name":       "p.name",
	"code":       "p.code",
	"price":      "p.price",
	"created_at": "p.created_at",
}

const productSelect = `
	SELECT p.id, p.user_account_id, p.name, p.code, p.price, p.created_at, p.updated_at, p.deleted_at,
	       s.id, s.product_id, s.quantity, s.created_at, s.updated_at
	FROM products p
	LEFT JOIN stock s ON s.product_id = p.id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Todas las lecturas filtran deleted_at IS NULL de
// forma explícita: no hay intercepción implícita del borrado lógico.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto activo. La violación del índice único
// parcial (user_account_id, code) se traduce a domain.ErrDuplicateCode.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_account_id, name, code, price, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULL)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserAccountID, product.Name, product.Code, product.Price,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByIDAndUserAccount obtiene un producto activo de la cuenta, con su stock.
// El lookup va acotado a la cuenta en el mismo WHERE: un producto ajeno es
// indistinguible de uno inexistente (nil).
func (r *ProductRepo) FindByIDAndUserAccount(id, userAccountID string) (*entity.Product, error) {
	query := productSelect + `
	WHERE p.id = $1 AND p.user_account_id = $2 AND p.deleted_at IS NULL`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id, userAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindByCodeAndUserAccount obtiene un producto activo por código dentro de la
// cuenta (comparación exacta, sensible a mayúsculas).
func (r *ProductRepo) FindByCodeAndUserAccount(code, userAccountID string) (*entity.Product, error) {
	query := productSelect + `
	WHERE p.code = $1 AND p.user_account_id = $2 AND p.deleted_at IS NULL`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, code, userAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// Update actualiza name, price y updated_at de un producto activo de la cuenta.
// Code, dueño y stock no se modifican por esta vía.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, price = $4, updated_at = $5
		WHERE id = $1 AND user_account_id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserAccountID, product.Name, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca deleted_at = now() si el producto está activo y pertenece a
// la cuenta. La fila nunca se elimina físicamente.
func (r *ProductRepo) SoftDelete(id, userAccountID string) (bool, error) {
	query := `
		UPDATE products SET deleted_at = now()
		WHERE id = $1 AND user_account_id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, id, userAccountID)
	if err != nil {
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByFilters lista los productos activos de la cuenta. Con filter no vacío
// conserva los que contienen el texto en name O code (substring sensible a
// mayúsculas). El ORDER BY se arma desde la lista blanca con desempate por id
// para que el resultado sea determinista.
func (r *ProductRepo) ListByFilters(userAccountID, filter string, sortKeys []repository.SortKey) ([]*entity.Product, error) {
	var sb strings.Builder
	sb.WriteString(productSelect)
	sb.WriteString(`
	WHERE p.user_account_id = $1 AND p.deleted_at IS NULL`)

	args := []any{userAccountID}
	if filter != "" {
		sb.WriteString(` AND (p.name LIKE '%' || $2 || '%' OR p.code LIKE '%' || $2 || '%')`)
		args = append(args, filter)
	}

	sb.WriteString(`
	ORDER BY `)
	for _, key := range sortKeys {
		col, ok := sortColumns[key.Field]
		if !ok {
			continue
		}
		sb.WriteString(col)
		if key.Direction == repository.SortDesc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
		sb.WriteString(", ")
	}
	sb.WriteString("p.id ASC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProduct lee una fila de productSelect (producto + stock por LEFT JOIN).
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var stockID, stockProductID *string
	var stockQuantity *int64
	var stockCreatedAt, stockUpdatedAt *time.Time
	err := row.Scan(
		&p.ID, &p.UserAccountID, &p.Name, &p.Code, &p.Price, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&stockID, &stockProductID, &stockQuantity, &stockCreatedAt, &stockUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if stockID != nil {
		p.Stock = &entity.Stock{
			ID:        *stockID,
			ProductID: *stockProductID,
			Quantity:  *stockQuantity,
			CreatedAt: *stockCreatedAt,
			UpdatedAt: *stockUpdatedAt,
		}
	}
	return &p, nil
}
