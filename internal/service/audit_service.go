package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

// --- DTOs ---

type AuditLogQuery struct {
	Action   string
	EntityID string
	Page     int
	Limit    int
}

type AuditLogResponse struct {
	ID         string          `json:"id"`
	UserID     *string         `json:"user_id"`
	Action     string          `json:"action"`
	EntityID   string          `json:"entity_id"`
	EntityName string          `json:"entity_name,omitempty"`
	Details    json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
}

var auditActions = map[string]bool{
	model.ActionCreateBill:           true,
	model.ActionDeleteBill:           true,
	model.ActionCreateEstimate:       true,
	model.ActionDeleteEstimate:       true,
	model.ActionCreateDegressiveRate: true,
	model.ActionUpdateDegressiveRate: true,
	model.ActionDeleteDegressiveRate: true,
	model.ActionCreateTax:            true,
	model.ActionUpdateTax:            true,
	model.ActionDeleteTax:            true,
	model.ActionResyncEventTaxes:     true,
	model.ActionResyncEventPrices:    true,
}

//go:generate mockgen -source=audit_service.go -destination=../mocks/service/audit_service.go -package=mockservice

// --- Interface ---

type AuditService interface {
	GetAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLogResponse, int64, error)
}

// --- Implementation ---

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns billing changes, most recent first.
func (s *auditService) GetAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLogResponse, int64, error) {
	if query.Action != "" && !auditActions[query.Action] {
		return nil, 0, fmt.Errorf("%w: unknown audit action %q", billing.ErrInvalidArgument, query.Action)
	}
	if query.Page < 1 || query.Limit < 1 {
		return nil, 0, fmt.Errorf("%w: page and limit must be positive", billing.ErrInvalidArgument)
	}

	logs, total, err := s.auditRepo.List(ctx, repository.AuditFilter{
		Action:   query.Action,
		EntityID: query.EntityID,
		Offset:   (query.Page - 1) * query.Limit,
		Limit:    query.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		var userID *string
		if l.UserID != nil {
			id := l.UserID.String()
			userID = &id
		}
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    rawJSON(l.Details),
			CreatedAt:  l.CreatedAt,
		})
	}

	return res, total, nil
}
