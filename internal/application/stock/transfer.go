package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
	"github.com/jhoicas/Bodegas-api/pkg/logger"
)

// TransferInput entrada para un traslado entre bodegas.
type TransferInput struct {
	ProductID              string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               int64
	Status                 string
	ActorID                string
}

// TransferStockUseCase mueve stock de una bodega a otra: un registro de
// auditoría (intención), débito condicional en origen con asiento de salida y
// crédito en destino con asiento de llegada. Todos los pasos ocurren en una
// sola transacción: un reporte concurrente nunca observa el destino acreditado
// sin el origen debitado.
type TransferStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	audit       AuditSink
	log         *logger.Logger
}

// NewTransferStockUseCase construye el caso de uso.
func NewTransferStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository, audit AuditSink, log *logger.Logger) *TransferStockUseCase {
	return &TransferStockUseCase{txRunner: txRunner, productRepo: productRepo, audit: audit, log: log}
}

// Transfer ejecuta el traslado y devuelve el registro de auditoría creado.
//
// Comportamiento deliberado, no accidental:
//   - si la bodega origen no tiene fila de stock, el débito y su asiento se
//     omiten por completo (solo entra stock al destino);
//   - si la tiene, el débito puede dejar la cantidad negativa; se registra en
//     el log a nivel warn para visibilidad del operador.
func (uc *TransferStockUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.StockTransfer, error) {
	if in.ProductID == "" || in.SourceWarehouseID == "" || in.DestinationWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !entity.ValidMovementStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	// El producto debe existir; las bodegas pueden no tener fila de stock aún.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("transfer: consultar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	transfer := &entity.StockTransfer{
		ID:                     uuid.New().String(),
		ProductID:              in.ProductID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		Status:                 in.Status,
		TransferDate:           now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.BackorderRepository,
		transferRepo repository.StockTransferRepository,
	) error {
		// 1. Registro de intención, incondicional.
		if err := transferRepo.Create(transfer); err != nil {
			return fmt.Errorf("transfer: insertar registro de traslado: %w", err)
		}

		// 2. Débito en origen solo si la fila existe.
		source, err := stockRepo.GetForUpdate(in.ProductID, in.SourceWarehouseID)
		if err != nil {
			return fmt.Errorf("transfer: leer stock origen: %w", err)
		}
		if source != nil {
			source.Quantity -= in.Quantity
			source.UpdatedAt = now
			if source.Quantity < 0 {
				uc.log.Warn().
					Str("product_id", in.ProductID).
					Str("warehouse_id", in.SourceWarehouseID).
					Int64("quantity", source.Quantity).
					Msg("el traslado dejó stock negativo en la bodega origen")
			}
			if err := stockRepo.Upsert(source); err != nil {
				return fmt.Errorf("transfer: debitar stock origen: %w", err)
			}
			src := in.SourceWarehouseID
			out := &entity.StockMovement{
				ID:                uuid.New().String(),
				ProductID:         in.ProductID,
				SourceWarehouseID: &src,
				Quantity:          -in.Quantity,
				Status:            entity.MovementStatusInTransit,
				CreatedAt:         now,
			}
			if err := movementRepo.Create(out); err != nil {
				return fmt.Errorf("transfer: asiento de salida: %w", err)
			}
		}

		// 3. Crédito atómico en destino (crea la fila si no existe).
		if err := stockRepo.AddQuantity(in.ProductID, in.DestinationWarehouseID, in.Quantity); err != nil {
			return fmt.Errorf("transfer: acreditar stock destino: %w", err)
		}

		// 4. Asiento de llegada.
		dst := in.DestinationWarehouseID
		arrival := &entity.StockMovement{
			ID:                     uuid.New().String(),
			ProductID:              in.ProductID,
			DestinationWarehouseID: &dst,
			Quantity:               in.Quantity,
			Status:                 entity.MovementStatusReceived,
			CreatedAt:              now,
		}
		if err := movementRepo.Create(arrival); err != nil {
			return fmt.Errorf("transfer: asiento de llegada: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, in.ActorID, "Stock Transfer",
		fmt.Sprintf("Traslado del producto %s de bodega %s a %s por %d unidades, estado %s",
			in.ProductID, in.SourceWarehouseID, in.DestinationWarehouseID, in.Quantity, in.Status))
	return transfer, nil
}
