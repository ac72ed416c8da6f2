package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// StockTransferRepository define el puerto de persistencia para los registros
// de auditoría de traslados (DIP).
type StockTransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	// List devuelve el historial de traslados, del más reciente al más antiguo.
	List(limit, offset int) ([]*entity.StockTransfer, error)
}
