package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// ReserveStockUseCase asigna stock disponible a una demanda concreta.
// Una reserva no es un movimiento físico: descuenta cantidad disponible sin
// escribir en el libro de movimientos. El faltante queda registrado como
// backorder Pending.
type ReserveStockUseCase struct {
	txRunner TxRunner
	audit    AuditSink
}

// NewReserveStockUseCase construye el caso de uso.
func NewReserveStockUseCase(txRunner TxRunner, audit AuditSink) *ReserveStockUseCase {
	return &ReserveStockUseCase{txRunner: txRunner, audit: audit}
}

// Reserve intenta reservar quantity unidades de un producto en una bodega y
// devuelve la cantidad efectivamente reservada.
//
//   - disponible >= pedido: descuenta el pedido completo, sin backorder.
//   - 0 < disponible < pedido: deja el stock en cero, crea un backorder por el
//     faltante y devuelve lo disponible.
//   - disponible == 0 (o fila inexistente): crea un backorder por todo el
//     pedido y devuelve 0.
//
// Todo el read-decide-write ocurre en una transacción con la fila de stock
// bloqueada, así dos reservas concurrentes sobre el mismo par no se
// entrelazan.
func (uc *ReserveStockUseCase) Reserve(ctx context.Context, productID, warehouseID string, quantity int64, actorID string) (int64, error) {
	if productID == "" || warehouseID == "" || quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}

	now := time.Now()
	var reserved int64

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.StockMovementRepository,
		backorderRepo repository.BackorderRepository,
		_ repository.StockTransferRepository,
	) error {
		current, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return fmt.Errorf("reserve: leer stock: %w", err)
		}
		onHand := int64(0)
		if current != nil {
			onHand = current.Quantity
		}

		if onHand >= quantity {
			current.Quantity = onHand - quantity
			current.UpdatedAt = now
			// la reserva nunca deja stock negativo
			if current.Quantity < 0 {
				return domain.ErrInvariantViolation
			}
			if err := stockRepo.Upsert(current); err != nil {
				return fmt.Errorf("reserve: descontar stock: %w", err)
			}
			reserved = quantity
			return nil
		}

		backorder := &entity.Backorder{
			ID:          uuid.New().String(),
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    quantity - onHand,
			Status:      entity.BackorderStatusPending,
			CreatedAt:   now,
		}
		if err := backorderRepo.Create(backorder); err != nil {
			return fmt.Errorf("reserve: crear backorder: %w", err)
		}

		if onHand > 0 {
			current.Quantity = 0
			current.UpdatedAt = now
			if err := stockRepo.Upsert(current); err != nil {
				return fmt.Errorf("reserve: dejar stock en cero: %w", err)
			}
			reserved = onHand
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.audit.Record(ctx, actorID, "Stock Reserved",
		fmt.Sprintf("Reservadas %d de %d unidades del producto %s en bodega %s", reserved, quantity, productID, warehouseID))
	return reserved, nil
}
