package stock_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso del motor de stock. El fakeTxRunner
// serializa las "transacciones" con un mutex, igual que Postgres serializa las
// secciones críticas con el lock de fila de GetForUpdate.
// ──────────────────────────────────────────────────────────────────────────────

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

type memState struct {
	mu         sync.Mutex
	stocks     map[string]*entity.Stock
	movements  []*entity.StockMovement
	backorders []*entity.Backorder
	transfers  []*entity.StockTransfer
}

func newMemState() *memState {
	return &memState{stocks: make(map[string]*entity.Stock)}
}

// seedStock inserta una fila de stock inicial sin pasar por el motor.
func (s *memState) seedStock(productID, warehouseID string, quantity int64) {
	s.stocks[stockKey(productID, warehouseID)] = &entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}
}

func (s *memState) quantity(productID, warehouseID string) (int64, bool) {
	row, ok := s.stocks[stockKey(productID, warehouseID)]
	if !ok {
		return 0, false
	}
	return row.Quantity, true
}

type fakeStockRepo struct{ s *memState }

func (r fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return r.GetForUpdate(productID, warehouseID)
}

// GetForUpdate devuelve una copia: la mutación solo se ve tras Upsert, como en
// el repo real.
func (r fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	row, ok := r.s.stocks[stockKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (r fakeStockRepo) Upsert(stock *entity.Stock) error {
	copied := *stock
	r.s.stocks[stockKey(stock.ProductID, stock.WarehouseID)] = &copied
	return nil
}

func (r fakeStockRepo) AddQuantity(productID, warehouseID string, delta int64) error {
	key := stockKey(productID, warehouseID)
	if row, ok := r.s.stocks[key]; ok {
		row.Quantity += delta
		return nil
	}
	r.s.stocks[key] = &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: delta}
	return nil
}

func (r fakeStockRepo) List() ([]*entity.Stock, error) {
	out := make([]*entity.Stock, 0, len(r.s.stocks))
	for _, row := range r.s.stocks {
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

type fakeMovementRepo struct{ s *memState }

func (r fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, movement)
	return nil
}

func (r fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

type fakeBackorderRepo struct{ s *memState }

func (r fakeBackorderRepo) Create(backorder *entity.Backorder) error {
	r.s.backorders = append(r.s.backorders, backorder)
	return nil
}

func (r fakeBackorderRepo) ListByStatus(status string, limit, offset int) ([]*entity.Backorder, error) {
	var out []*entity.Backorder
	for _, b := range r.s.backorders {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTransferRepo struct{ s *memState }

func (r fakeTransferRepo) Create(transfer *entity.StockTransfer) error {
	r.s.transfers = append(r.s.transfers, transfer)
	return nil
}

func (r fakeTransferRepo) List(limit, offset int) ([]*entity.StockTransfer, error) {
	return r.s.transfers, nil
}

type fakeTxRunner struct{ s *memState }

func (t fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	backorderRepo repository.BackorderRepository,
	transferRepo repository.StockTransferRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(fakeStockRepo{t.s}, fakeMovementRepo{t.s}, fakeBackorderRepo{t.s}, fakeTransferRepo{t.s})
}

// fakeAudit acumula las acciones registradas. Con mutex propio: el sink se
// invoca fuera de la transacción.
type fakeAudit struct {
	mu      sync.Mutex
	actions []string
}

func (a *fakeAudit) Record(_ context.Context, userID, action, details string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
