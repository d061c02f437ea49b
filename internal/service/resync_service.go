package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/config"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

// --- DTOs ---

type ResyncResponse struct {
	EventID          string            `json:"event_id"`
	Taxes            []billing.FlatTax `json:"taxes,omitempty"`
	UpdatedMaterials int               `json:"updated_materials,omitempty"`
}

//go:generate mockgen -source=resync_service.go -destination=../mocks/service/resync_service.go -package=mockservice

// --- Interface ---

// ResyncService re-derives values frozen on an event from the current configuration.
type ResyncService interface {
	ResyncEventTaxes(ctx context.Context, userID, eventID string) (ResyncResponse, error)
	ResyncMaterialPrices(ctx context.Context, userID, eventID string) (ResyncResponse, error)
}

type resyncService struct {
	cfg       *config.Config
	eventRepo repository.EventRepository
	taxRepo   repository.TaxRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	publisher Publisher
	logger    *zap.Logger
}

func NewResyncService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	taxRepo repository.TaxRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher Publisher,
	logger *zap.Logger,
) ResyncService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &resyncService{
		cfg:       cfg,
		eventRepo: eventRepo,
		taxRepo:   taxRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// --- Implementation ---

func (s *resyncService) loadEvent(ctx context.Context, eventID string) (*model.Event, error) {
	id, err := parseID(eventID, "event")
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}
	return event, nil
}

// currentTax returns the tax linked to the event, or the default one. Nil means no tax at all.
func (s *resyncService) currentTax(ctx context.Context, event *model.Event) (*model.Tax, error) {
	if event.TaxID != nil {
		tax, err := s.taxRepo.FindByID(ctx, *event.TaxID)
		if err == nil {
			return tax, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to load tax %s: %w", *event.TaxID, err)
		}
	}
	tax, err := s.taxRepo.FindDefault(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load default tax: %w", err)
	}
	return tax, nil
}

// ResyncEventTaxes replaces the taxes frozen on the event. Value-based taxes cannot follow
// an event billed in another currency than the configured one.
func (s *resyncService) ResyncEventTaxes(ctx context.Context, userID, eventID string) (ResyncResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return ResyncResponse{}, err
	}

	tax, err := s.currentTax(ctx, event)
	if err != nil {
		return ResyncResponse{}, err
	}

	taxes := []billing.FlatTax{}
	var taxID *string
	if tax != nil {
		currencyChanged := !billing.CurrencyMatches(event.Currency, s.cfg.Currency.Code)
		if taxes, err = billing.Resolve(toBillingTax(*tax), currencyChanged); err != nil {
			return ResyncResponse{}, err
		}
		taxID = uuidString(&tax.ID)
	}
	encoded, err := json.Marshal(taxes)
	if err != nil {
		return ResyncResponse{}, fmt.Errorf("failed to encode taxes: %w", err)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		linked := event.TaxID
		if tax != nil {
			linked = &tax.ID
		}
		if err := s.eventRepo.UpdateTaxes(txCtx, event.ID, linked, string(encoded)); err != nil {
			return fmt.Errorf("failed to update event taxes: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionResyncEventTaxes, event.ID.String(), event.Title, map[string]any{
			"tax_id": taxID,
			"taxes":  taxes,
		}))
	})
	if err != nil {
		return ResyncResponse{}, err
	}

	s.logger.Info("event taxes resynchronized", zap.String("event_id", event.ID.String()), zap.Int("taxes", len(taxes)))
	res := ResyncResponse{EventID: event.ID.String(), Taxes: taxes}
	s.publisher.Publish("event.taxes_resynced", res)
	return res, nil
}

// ResyncMaterialPrices copies the current catalog prices onto the booked lines.
func (s *resyncService) ResyncMaterialPrices(ctx context.Context, userID, eventID string) (ResyncResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return ResyncResponse{}, err
	}
	if err := billing.GuardResync(false, event.Currency, s.cfg.Currency.Code); err != nil {
		return ResyncResponse{}, err
	}

	changed := make([]model.EventMaterial, 0, len(event.Materials))
	for _, em := range event.Materials {
		if em.Material == nil {
			return ResyncResponse{}, fmt.Errorf("%w: booked material %s is missing", billing.ErrIncompleteBookingData, em.MaterialID)
		}
		if em.RentalPrice.Equal(em.Material.RentalPrice) && em.ReplacementPrice.Equal(em.Material.ReplacementPrice) {
			continue
		}
		em.RentalPrice = em.Material.RentalPrice
		em.ReplacementPrice = em.Material.ReplacementPrice
		changed = append(changed, em)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if len(changed) > 0 {
			if err := s.eventRepo.UpdateMaterialPrices(txCtx, changed); err != nil {
				return fmt.Errorf("failed to update material prices: %w", err)
			}
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionResyncEventPrices, event.ID.String(), event.Title, map[string]any{
			"updated_materials": len(changed),
		}))
	})
	if err != nil {
		return ResyncResponse{}, err
	}

	s.logger.Info("event prices resynchronized", zap.String("event_id", event.ID.String()), zap.Int("updated", len(changed)))
	res := ResyncResponse{EventID: event.ID.String(), UpdatedMaterials: len(changed)}
	s.publisher.Publish("event.prices_resynced", res)
	return res, nil
}
