package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra a proveedor (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItems(items []*entity.PurchaseOrderItem) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
}
