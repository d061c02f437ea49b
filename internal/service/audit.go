package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"rentalbilling/internal/model"
)

// Publisher pushes billing events to connected clients.
type Publisher interface {
	Publish(eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

func parseUserID(userID string) *uuid.UUID {
	if parsed, err := uuid.Parse(userID); err == nil {
		return &parsed
	}
	return nil
}

func newAuditLog(userID, action, entityID, entityName string, details any) *model.AuditLog {
	detailsJSON, _ := json.Marshal(details)
	return &model.AuditLog{
		UserID:     parseUserID(userID),
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
}
