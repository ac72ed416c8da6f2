// Package order compone el motor de reservas para colocar y despachar órdenes
// de cliente.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// StockReserver es la primitiva de reserva que este caso de uso compone por
// línea de orden.
type StockReserver interface {
	Reserve(ctx context.Context, productID, warehouseID string, quantity int64, actorID string) (int64, error)
}

// PlaceOrderItemInput línea de la orden a colocar.
type PlaceOrderItemInput struct {
	ProductID string
	Quantity  int64
}

// PlaceOrderInput entrada para colocar una orden.
type PlaceOrderInput struct {
	CustomerID  string
	WarehouseID string
	Items       []PlaceOrderItemInput
	ActorID     string
}

// PlacedOrder resultado de colocar una orden: la orden y sus líneas con lo
// reservado y lo backordeado por línea.
type PlacedOrder struct {
	Order *entity.CustomerOrder
	Items []*entity.OrderItem
}

// UseCase casos de uso de órdenes de cliente.
type UseCase struct {
	orderRepo repository.OrderRepository
	reserver  StockReserver
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderRepository, reserver StockReserver) *UseCase {
	return &UseCase{orderRepo: orderRepo, reserver: reserver}
}

// Place crea la orden en estado Placed y reserva stock línea por línea.
// El resultado es exitoso aunque todas las líneas queden backordeadas: el
// faltante se ve en QuantityBackordered, nunca como fallo de la orden.
//
// Cada reserva es su propia transacción; si una línea falla por persistencia,
// las líneas ya reservadas quedan aplicadas (no hay rollback automático entre
// líneas) y el error indica el sub-paso que falló.
func (uc *UseCase) Place(ctx context.Context, in PlaceOrderInput) (*PlacedOrder, error) {
	if in.CustomerID == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	ord := &entity.CustomerOrder{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Status:      entity.OrderStatusPlaced,
		OrderDate:   now,
	}
	if err := uc.orderRepo.Create(ord); err != nil {
		return nil, fmt.Errorf("place order: crear orden: %w", err)
	}

	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		reserved, err := uc.reserver.Reserve(ctx, item.ProductID, in.WarehouseID, item.Quantity, in.ActorID)
		if err != nil {
			return nil, fmt.Errorf("place order: reservar producto %s: %w", item.ProductID, err)
		}
		items = append(items, &entity.OrderItem{
			ID:                  uuid.New().String(),
			OrderID:             ord.ID,
			ProductID:           item.ProductID,
			QuantityOrdered:     item.Quantity,
			QuantityReserved:    reserved,
			QuantityBackordered: item.Quantity - reserved,
		})
	}
	if err := uc.orderRepo.CreateItems(items); err != nil {
		return nil, fmt.Errorf("place order: crear líneas: %w", err)
	}

	return &PlacedOrder{Order: ord, Items: items}, nil
}

// Ship pasa la orden de Placed a Shipped. No vuelve a tocar el stock: ya se
// descontó al reservar. Requiere que la orden exista y tenga al menos una
// línea persistida.
func (uc *UseCase) Ship(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("ship order: leer orden: %w", err)
	}
	if ord == nil {
		return domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return fmt.Errorf("ship order: leer líneas: %w", err)
	}
	if len(items) == 0 {
		return domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.orderRepo.UpdateStatus(orderID, entity.OrderStatusShipped, &now); err != nil {
		return fmt.Errorf("ship order: actualizar estado: %w", err)
	}
	return nil
}
