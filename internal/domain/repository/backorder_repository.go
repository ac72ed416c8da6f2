package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// BackorderRepository define el puerto de persistencia para backorders (DIP).
type BackorderRepository interface {
	Create(backorder *entity.Backorder) error
	ListByStatus(status string, limit, offset int) ([]*entity.Backorder, error)
}
