package repository

import (
	"time"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de cliente y
// sus líneas (DIP).
type OrderRepository interface {
	Create(order *entity.CustomerOrder) error
	CreateItems(items []*entity.OrderItem) error
	GetByID(orderID string) (*entity.CustomerOrder, error)
	GetItems(orderID string) ([]*entity.OrderItem, error)
	UpdateStatus(orderID, status string, shippedDate *time.Time) error
}
