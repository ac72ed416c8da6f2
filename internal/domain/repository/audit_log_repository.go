package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para eventos de
// auditoría (DIP).
type AuditLogRepository interface {
	Create(event *entity.AuditLog) error
}
