package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rentalbilling/internal/config"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

//go:generate mockgen -source=estimate_service.go -destination=../mocks/service/estimate_service.go -package=mockservice

// --- Interface ---

type EstimateService interface {
	CreateEstimate(ctx context.Context, userID, eventID string, req CreateDocumentRequest) (DocumentResponse, error)
	ListEstimatesForEvent(ctx context.Context, eventID string) ([]DocumentResponse, error)
	DeleteEstimate(ctx context.Context, userID, id string) error
}

type estimateService struct {
	builder      *quoteBuilder
	estimateRepo repository.EstimateRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	publisher    Publisher
	logger       *zap.Logger
	now          func() time.Time
}

func NewEstimateService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	catalogRepo repository.CatalogRepository,
	rateRepo repository.DegressiveRateRepository,
	taxRepo repository.TaxRepository,
	estimateRepo repository.EstimateRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher Publisher,
	logger *zap.Logger,
) EstimateService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &estimateService{
		builder: &quoteBuilder{
			cfg:         cfg,
			eventRepo:   eventRepo,
			catalogRepo: catalogRepo,
			rateRepo:    rateRepo,
			taxRepo:     taxRepo,
		},
		estimateRepo: estimateRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// --- Implementation ---

func (s *estimateService) CreateEstimate(ctx context.Context, userID, eventID string, req CreateDocumentRequest) (DocumentResponse, error) {
	quote, _, err := s.builder.build(ctx, eventID, req.discount())
	if err != nil {
		return DocumentResponse{}, err
	}

	record := quote.ToModelRecord(s.now(), parseUserID(userID))
	frozen, err := freezeRecord(record)
	if err != nil {
		return DocumentResponse{}, err
	}

	estimate := &model.Estimate{
		Date:              record.Date,
		EventID:           record.EventID,
		BeneficiaryID:     record.BeneficiaryID,
		Materials:         frozen.materials,
		Taxes:             frozen.taxes,
		DegressiveRate:    frozen.degressiveRate,
		DiscountRate:      frozen.discountRate,
		VatRate:           frozen.vatRate,
		DueAmount:         frozen.dueAmount,
		ReplacementAmount: frozen.replacementAmount,
		Currency:          record.Currency,
		UserID:            record.UserID,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.estimateRepo.Create(txCtx, estimate); err != nil {
			return fmt.Errorf("failed to create estimate: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionCreateEstimate, estimate.ID.String(), "", map[string]any{
			"event_id":   estimate.EventID.String(),
			"due_amount": record.DueAmount,
		}))
	})
	if err != nil {
		return DocumentResponse{}, err
	}

	s.logger.Info("estimate created",
		zap.String("event_id", estimate.EventID.String()),
		zap.String("due_amount", record.DueAmount),
	)
	res := toEstimateResponse(*estimate)
	s.publisher.Publish("estimate.created", res)
	return res, nil
}

func (s *estimateService) ListEstimatesForEvent(ctx context.Context, eventID string) ([]DocumentResponse, error) {
	id, err := parseID(eventID, "event")
	if err != nil {
		return nil, err
	}
	estimates, err := s.estimateRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	res := make([]DocumentResponse, 0, len(estimates))
	for _, e := range estimates {
		res = append(res, toEstimateResponse(e))
	}
	return res, nil
}

func (s *estimateService) DeleteEstimate(ctx context.Context, userID, id string) error {
	estimateID, err := parseID(id, "estimate")
	if err != nil {
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		estimate, err := s.estimateRepo.FindByID(txCtx, estimateID)
		if err != nil {
			return fmt.Errorf("failed to load estimate %s: %w", estimateID, err)
		}
		if err := s.estimateRepo.Delete(txCtx, estimateID); err != nil {
			return fmt.Errorf("failed to delete estimate: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionDeleteEstimate, estimateID.String(), "", map[string]any{
			"event_id": estimate.EventID.String(),
		}))
	})
	if err != nil {
		return err
	}

	s.publisher.Publish("estimate.deleted", map[string]string{"id": estimateID.String()})
	return nil
}
