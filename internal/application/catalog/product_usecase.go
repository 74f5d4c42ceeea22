package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/ledger"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// maxAdjustRetries reintentos internos de AdjustStock ante ErrConflict antes de
// devolvérselo al caller.
const maxAdjustRetries = 3

// ProductUseCase casos de uso del catálogo de productos: CRUD con borrado
// lógico, unicidad de code por cuenta y ajuste transaccional de stock.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea un producto con su stock inicial en una sola transacción.
// Falla con ErrDuplicateCode si la cuenta ya tiene un producto activo con el
// mismo code (comparación exacta). Producto y stock se persisten juntos o no
// se persiste ninguno.
func (uc *ProductUseCase) Create(ctx context.Context, userAccountID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price == nil || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock == nil || in.Stock.Quantity < 0 || in.Stock.Quantity > domain.MaxProductStock {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		UserAccountID: userAccountID,
		Name:          in.Name,
		Code:          in.Code,
		Price:         *in.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Quantity:  in.Stock.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		// Chequeo de duplicado dentro de la tx; el índice único parcial de la
		// tabla cierra la carrera entre dos Create simultáneos.
		existing, err := productRepo.FindByCodeAndUserAccount(in.Code, userAccountID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateCode
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.Create(stock)
	})
	if err != nil {
		return nil, err
	}
	product.Stock = stock
	return toProductResponse(product), nil
}

// Edit modifica name y price de un producto activo de la cuenta. Code, dueño y
// stock quedan intactos. Un producto de otra cuenta es indistinguible de uno
// inexistente: ErrNotFound en ambos casos.
func (uc *ProductUseCase) Edit(userAccountID, productID string, in dto.EditProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price == nil || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.FindByIDAndUserAccount(productID, userAccountID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = *in.Price
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto activo de la cuenta, con su stock.
func (uc *ProductUseCase) Get(userAccountID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByIDAndUserAccount(productID, userAccountID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Delete hace el borrado lógico del producto. Borrar un producto ya borrado o
// ajeno devuelve ErrNotFound; la fila nunca se elimina físicamente.
func (uc *ProductUseCase) Delete(userAccountID, productID string) error {
	deleted, err := uc.productRepo.SoftDelete(productID, userAccountID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los productos activos de la cuenta, filtrados por substring en
// name o code y ordenados por los sortKeys (multi-clave, estable). El stock
// incluido es un snapshot para mostrar, no una lectura autoritativa.
func (uc *ProductUseCase) List(userAccountID, filter string, sortKeys []repository.SortKey) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByFilters(userAccountID, filter, sortKeys)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// AdjustStock aplica una operación ADD/SUB sobre el stock del producto.
// El span relee→ledger→escribe corre dentro de una transacción con la fila de
// stock bloqueada (SELECT FOR UPDATE), así dos ajustes concurrentes sobre el
// mismo producto nunca parten de la misma cantidad vieja. Ante ErrConflict la
// transacción completa se reintenta desde la relectura; cualquier otro error
// se propaga sin reintento y sin dejar estado parcial.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, userAccountID, productID string, in dto.AlterStockRequest) error {
	op := ledger.Operation(strings.ToUpper(in.Operation))
	if !op.Valid() {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Quantity > domain.MaxProductStock {
		return domain.ErrInvalidInput
	}

	var err error
	for attempt := 0; attempt <= maxAdjustRetries; attempt++ {
		err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
			product, err := productRepo.FindByIDAndUserAccount(productID, userAccountID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			stock, err := stockRepo.GetForUpdate(product.ID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrNotFound
			}
			newQuantity, err := ledger.Apply(stock.Quantity, op, in.Quantity)
			if err != nil {
				return err
			}
			return stockRepo.UpdateQuantity(stock.ID, newQuantity)
		})
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return err
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Stock != nil {
		resp.Stock = &dto.StockResponse{Quantity: p.Stock.Quantity}
	}
	return resp
}
