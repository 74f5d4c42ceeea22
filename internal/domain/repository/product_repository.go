package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// SortDirection dirección de un criterio de orden.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortKey un criterio de orden (campo + dirección) para el listado de productos.
// Los campos ordenables son los atributos escalares del producto: name, code,
// price y created_at. Campos anidados del stock no son ordenables.
type SortKey struct {
	Field     string
	Direction SortDirection
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas excluyen productos borrados lógicamente (deleted_at no
// nulo) y están acotadas a la cuenta dueña: no existe lookup sin tenant.
type ProductRepository interface {
	// Create persiste un producto nuevo (activo). El Stock se persiste aparte
	// dentro de la misma transacción.
	Create(product *entity.Product) error
	// FindByIDAndUserAccount obtiene un producto activo de la cuenta, con su
	// stock cargado. Devuelve nil si no existe, está borrado o es de otra cuenta.
	FindByIDAndUserAccount(id, userAccountID string) (*entity.Product, error)
	// FindByCodeAndUserAccount obtiene un producto activo por código dentro de
	// la cuenta (comparación exacta, sensible a mayúsculas).
	FindByCodeAndUserAccount(code, userAccountID string) (*entity.Product, error)
	// Update modifica name, price y updated_at de un producto activo de la
	// cuenta. Code, dueño y stock no se tocan.
	Update(product *entity.Product) error
	// SoftDelete marca deleted_at = now() si el producto está activo y es de la
	// cuenta. Devuelve false si no afectó ninguna fila.
	SoftDelete(id, userAccountID string) (bool, error)
	// ListByFilters devuelve los productos activos de la cuenta, filtrados por
	// substring en name O code cuando filter no es vacío, ordenados por los
	// sortKeys en orden (estable, con desempate determinista).
	ListByFilters(userAccountID, filter string, sortKeys []SortKey) ([]*entity.Product, error)
}
