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

// AddStockUseCase registra una entrada (o ajuste) de stock de un producto en
// una bodega. Cada entrada escribe exactamente un asiento en el libro de
// movimientos, con ambas bodegas apuntando a la misma y estado Received.
type AddStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	audit       AuditSink
}

// NewAddStockUseCase construye el caso de uso.
func NewAddStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository, audit AuditSink) *AddStockUseCase {
	return &AddStockUseCase{txRunner: txRunner, productRepo: productRepo, audit: audit}
}

// Add suma quantity (puede ser negativo para ajustes) al stock del par y
// devuelve la fila resultante. El resultado nunca puede quedar negativo: un
// ajuste que lo haría falla con ErrInvariantViolation sin aplicar nada.
func (uc *AddStockUseCase) Add(ctx context.Context, productID, warehouseID string, quantity int64, actorID string) (*entity.Stock, error) {
	if productID == "" || warehouseID == "" || quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("add stock: consultar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var result *entity.Stock

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.BackorderRepository,
		_ repository.StockTransferRepository,
	) error {
		current, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return fmt.Errorf("add stock: leer stock: %w", err)
		}
		if current == nil {
			current = &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
		}
		current.Quantity += quantity
		current.UpdatedAt = now
		if current.Quantity < 0 {
			return domain.ErrInvariantViolation
		}
		if err := stockRepo.Upsert(current); err != nil {
			return fmt.Errorf("add stock: actualizar stock: %w", err)
		}

		wh := warehouseID
		mov := &entity.StockMovement{
			ID:                     uuid.New().String(),
			ProductID:              productID,
			SourceWarehouseID:      &wh,
			DestinationWarehouseID: &wh,
			Quantity:               quantity,
			Status:                 entity.MovementStatusReceived,
			CreatedAt:              now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return fmt.Errorf("add stock: asiento de entrada: %w", err)
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "Stock Added",
		fmt.Sprintf("Entrada de %d unidades del producto %s en bodega %s", quantity, productID, warehouseID))
	return result, nil
}
