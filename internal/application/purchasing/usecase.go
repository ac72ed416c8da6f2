// Package purchasing gestiona órdenes de compra a proveedor. Una orden creada
// ya Received ingresa sus ítems al stock a través del motor de entradas, que
// es quien escribe los asientos del libro de movimientos.
package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// StockAdder es la primitiva de entrada de stock que se ejecuta por ítem
// recibido.
type StockAdder interface {
	Add(ctx context.Context, productID, warehouseID string, quantity int64, actorID string) (*entity.Stock, error)
}

// CreateItemInput línea de la orden de compra.
type CreateItemInput struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
}

// CreateInput entrada para crear una orden de compra.
type CreateInput struct {
	SupplierID string
	OrderDate  time.Time
	Status     string
	Items      []CreateItemInput
	ActorID    string
}

// UseCase casos de uso de órdenes de compra.
type UseCase struct {
	poRepo repository.PurchaseOrderRepository
	adder  StockAdder
}

// NewUseCase construye el caso de uso.
func NewUseCase(poRepo repository.PurchaseOrderRepository, adder StockAdder) *UseCase {
	return &UseCase{poRepo: poRepo, adder: adder}
}

// Create persiste la orden y sus líneas; con estado Received además ingresa
// cada ítem al stock de su bodega. Las entradas ya aplicadas no se revierten
// si una posterior falla.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.PurchaseOrder, error) {
	if in.SupplierID == "" || len(in.Items) == 0 || !entity.ValidPurchaseOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.WarehouseID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Status:     in.Status,
		OrderDate:  orderDate,
		CreatedAt:  time.Now(),
	}
	if err := uc.poRepo.Create(po); err != nil {
		return nil, fmt.Errorf("purchase order: crear orden: %w", err)
	}

	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, &entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: po.ID,
			ProductID:       item.ProductID,
			WarehouseID:     item.WarehouseID,
			Quantity:        item.Quantity,
		})
	}
	if err := uc.poRepo.CreateItems(items); err != nil {
		return nil, fmt.Errorf("purchase order: crear líneas: %w", err)
	}

	if in.Status == entity.PurchaseOrderStatusReceived {
		for _, item := range in.Items {
			if _, err := uc.adder.Add(ctx, item.ProductID, item.WarehouseID, item.Quantity, in.ActorID); err != nil {
				return nil, fmt.Errorf("purchase order: ingresar producto %s: %w", item.ProductID, err)
			}
		}
	}
	return po, nil
}

// List devuelve las órdenes de compra registradas.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.poRepo.List(limit, offset)
}
