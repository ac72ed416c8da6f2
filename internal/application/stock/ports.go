package stock

import (
	"context"

	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el mecanismo de serialización por clave
// (producto, bodega): el read-modify-write de cada operación ocurre completo
// dentro de la transacción, con bloqueo de fila en el store.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		backorderRepo repository.BackorderRepository,
		transferRepo repository.StockTransferRepository,
	) error) error
}

// AuditSink recibe eventos de auditoría de operaciones mutadoras.
// Fire-and-forget: un fallo del sink nunca hace fallar la operación.
type AuditSink interface {
	Record(ctx context.Context, userID, action, details string)
}
