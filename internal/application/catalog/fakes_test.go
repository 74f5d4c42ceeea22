package catalog_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// fakeStore almacén en memoria compartido por los fakes. Modela el bloqueo por
// fila de stock con un mutex por producto: GetForUpdate lo toma y el runner lo
// libera al terminar la transacción, igual que un SELECT FOR UPDATE.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product // por ID, sin stock embebido
	stocks   map[string]*entity.Stock   // por productID
	rowLocks map[string]*sync.Mutex     // por productID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		stocks:   make(map[string]*entity.Stock),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func (s *fakeStore) rowLock(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rowLocks[productID]; !ok {
		s.rowLocks[productID] = &sync.Mutex{}
	}
	return s.rowLocks[productID]
}

type storeSnapshot struct {
	products map[string]entity.Product
	stocks   map[string]entity.Stock
}

func (s *fakeStore) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		products: make(map[string]entity.Product, len(s.products)),
		stocks:   make(map[string]entity.Stock, len(s.stocks)),
	}
	for id, p := range s.products {
		snap.products[id] = *p
	}
	for id, st := range s.stocks {
		snap.stocks[id] = *st
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]*entity.Product, len(snap.products))
	for id, p := range snap.products {
		cp := p
		s.products[id] = &cp
	}
	s.stocks = make(map[string]*entity.Stock, len(snap.stocks))
	for id, st := range snap.stocks {
		cp := st
		s.stocks[id] = &cp
	}
}

func (s *fakeStore) copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	if st, ok := s.stocks[p.ID]; ok {
		stCopy := *st
		cp.Stock = &stCopy
	}
	return &cp
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeProductRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	store *fakeStore
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Réplica del índice único parcial (user_account_id, code) entre activos.
	for _, p := range r.store.products {
		if p.DeletedAt == nil && p.UserAccountID == product.UserAccountID && p.Code == product.Code {
			return domain.ErrDuplicateCode
		}
	}
	cp := *product
	cp.Stock = nil
	r.store.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByIDAndUserAccount(id, userAccountID string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok || p.DeletedAt != nil || p.UserAccountID != userAccountID {
		return nil, nil
	}
	return r.store.copyProduct(p), nil
}

func (r *fakeProductRepo) FindByCodeAndUserAccount(code, userAccountID string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.DeletedAt == nil && p.UserAccountID == userAccountID && p.Code == code {
			return r.store.copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[product.ID]
	if !ok || p.DeletedAt != nil || p.UserAccountID != product.UserAccountID {
		return domain.ErrNotFound
	}
	p.Name = product.Name
	p.Price = product.Price
	p.UpdatedAt = product.UpdatedAt
	return nil
}

func (r *fakeProductRepo) SoftDelete(id, userAccountID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok || p.DeletedAt != nil || p.UserAccountID != userAccountID {
		return false, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return true, nil
}

func (r *fakeProductRepo) ListByFilters(userAccountID, filter string, sortKeys []repository.SortKey) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.DeletedAt != nil || p.UserAccountID != userAccountID {
			continue
		}
		if filter != "" && !strings.Contains(p.Name, filter) && !strings.Contains(p.Code, filter) {
			continue
		}
		list = append(list, r.store.copyProduct(p))
	}
	sort.SliceStable(list, func(i, j int) bool {
		for _, key := range sortKeys {
			c := compareProducts(list[i], list[j], key.Field)
			if c == 0 {
				continue
			}
			if key.Direction == repository.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return list[i].ID < list[j].ID // desempate determinista
	})
	return list, nil
}

func compareProducts(a, b *entity.Product, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "code":
		return strings.Compare(a.Code, b.Code)
	case "price":
		return a.Price.Cmp(b.Price)
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeStockRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	store *fakeStore
	tx    *fakeTx // nil fuera de transacción
}

var _ repository.StockRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *stock
	r.store.stocks[stock.ProductID] = &cp
	return nil
}

func (r *fakeStockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	lock := r.store.rowLock(productID)
	lock.Lock()
	if r.tx != nil {
		r.tx.held = append(r.tx.held, lock)
	} else {
		defer lock.Unlock()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st, ok := r.store.stocks[productID]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStockRepo) UpdateQuantity(stockID string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, st := range r.store.stocks {
		if st.ID == stockID {
			st.Quantity = quantity
			st.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeTxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeTx struct {
	held []*sync.Mutex
}

// fakeTxRunner ejecuta fn con repos del almacén en memoria y libera los
// bloqueos de fila al terminar, como el commit/rollback real.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx := &fakeTx{}
	defer func() {
		for _, m := range tx.held {
			m.Unlock()
		}
	}()
	return fn(&fakeProductRepo{store: r.store}, &fakeStockRepo{store: r.store, tx: tx})
}

// failingStockTxRunner corre fn con un repositorio de stock que siempre falla
// al crear, y ante el error descarta los efectos como haría un rollback.
type failingStockTxRunner struct {
	store *fakeStore
	err   error
}

func (r *failingStockTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	snapshot := r.store.snapshot()
	err := fn(&fakeProductRepo{store: r.store}, &failingStockRepo{err: r.err})
	if err != nil {
		r.store.restore(snapshot)
	}
	return err
}

type failingStockRepo struct {
	err error
}

var _ repository.StockRepository = (*failingStockRepo)(nil)

func (r *failingStockRepo) Create(*entity.Stock) error { return r.err }
func (r *failingStockRepo) GetForUpdate(string) (*entity.Stock, error) {
	return nil, r.err
}
func (r *failingStockRepo) UpdateQuantity(string, int64) error { return r.err }

// conflictingTxRunner falla con ErrConflict las primeras failures veces y luego
// delega en el runner real. Sirve para probar el reintento acotado.
type conflictingTxRunner struct {
	inner    *fakeTxRunner
	failures int
	calls    int
}

func (r *conflictingTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	r.calls++
	if r.calls <= r.failures {
		return domain.ErrConflict
	}
	return r.inner.Run(ctx, fn)
}
