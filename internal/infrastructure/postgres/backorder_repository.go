package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

var _ repository.BackorderRepository = (*BackorderRepo)(nil)

// BackorderRepo implementación sobre PostgreSQL (usable con pool o tx).
type BackorderRepo struct {
	q Querier
}

// NewBackorderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBackorderRepository(q Querier) *BackorderRepo {
	return &BackorderRepo{q: q}
}

// Create persiste un backorder.
func (r *BackorderRepo) Create(backorder *entity.Backorder) error {
	if backorder.ID == "" {
		backorder.ID = uuid.New().String()
	}
	query := `
		INSERT INTO backorders (id, product_id, warehouse_id, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		backorder.ID, backorder.ProductID, backorder.WarehouseID,
		backorder.Quantity, backorder.Status, backorder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create backorder: %w", err)
	}
	return nil
}

// ListByStatus lista backorders por estado, del más reciente al más antiguo.
func (r *BackorderRepo) ListByStatus(status string, limit, offset int) ([]*entity.Backorder, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, status, created_at
		FROM backorders WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list backorders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Backorder
	for rows.Next() {
		var b entity.Backorder
		if err := rows.Scan(&b.ID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan backorder: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
