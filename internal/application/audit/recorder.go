// Package audit implementa el sink de auditoría de operaciones mutadoras.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
	"github.com/jhoicas/Bodegas-api/pkg/logger"
)

// Recorder persiste eventos de auditoría con semántica fire-and-forget: si la
// inserción falla se registra en el log y la operación que originó el evento
// continúa como si nada.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el sink.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record registra quién (userID) hizo qué (action, details).
func (r *Recorder) Record(_ context.Context, userID, action, details string) {
	event := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(event); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("user_id", userID).
			Msg("no se pudo registrar el evento de auditoría")
	}
}
