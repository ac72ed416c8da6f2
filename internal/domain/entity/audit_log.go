package entity

import "time"

// AuditLog registra quién ejecutó qué operación mutadora (atribución, no
// autorización: la autorización ocurre en el borde HTTP).
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Details   string
	CreatedAt time.Time
}
