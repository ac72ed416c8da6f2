package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden de cliente.
func (r *OrderRepo) Create(order *entity.CustomerOrder) error {
	query := `
		INSERT INTO customer_orders (id, customer_id, warehouse_id, status, order_date, shipped_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.WarehouseID, order.Status, order.OrderDate, order.ShippedDate,
	)
	if err != nil {
		return fmt.Errorf("insert customer order: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas de una orden.
func (r *OrderRepo) CreateItems(items []*entity.OrderItem) error {
	query := `
		INSERT INTO customer_order_items (id, customer_order_id, product_id, quantity_ordered, quantity_reserved, quantity_backordered)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.OrderID, item.ProductID,
			item.QuantityOrdered, item.QuantityReserved, item.QuantityBackordered,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID, o nil si no existe.
func (r *OrderRepo) GetByID(orderID string) (*entity.CustomerOrder, error) {
	query := `
		SELECT id, customer_id, warehouse_id, status, order_date, shipped_date
		FROM customer_orders WHERE id = $1`
	var o entity.CustomerOrder
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&o.ID, &o.CustomerID, &o.WarehouseID, &o.Status, &o.OrderDate, &o.ShippedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas de una orden.
func (r *OrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, customer_order_id, product_id, quantity_ordered, quantity_reserved, quantity_backordered
		FROM customer_order_items WHERE customer_order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.QuantityOrdered, &item.QuantityReserved, &item.QuantityBackordered); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden (y la fecha de despacho si aplica).
func (r *OrderRepo) UpdateStatus(orderID, status string, shippedDate *time.Time) error {
	query := `UPDATE customer_orders SET status = $2, shipped_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, status, shippedDate)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
