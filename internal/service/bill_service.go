package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/config"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

//go:generate mockgen -source=bill_service.go -destination=../mocks/service/bill_service.go -package=mockservice

// --- Interface ---

type BillService interface {
	CreateBill(ctx context.Context, userID, eventID string, req CreateDocumentRequest) (DocumentResponse, error)
	ListBills(ctx context.Context, page, limit int) ([]DocumentResponse, int64, error)
	GetBill(ctx context.Context, id string) (DocumentResponse, error)
	DeleteBill(ctx context.Context, userID, id string) error
	RenderBillPDF(ctx context.Context, eventID, discount string) ([]byte, string, error)
}

type billService struct {
	builder   *quoteBuilder
	billRepo  repository.BillRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	renderer  PDFRenderer
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewBillService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	catalogRepo repository.CatalogRepository,
	rateRepo repository.DegressiveRateRepository,
	taxRepo repository.TaxRepository,
	billRepo repository.BillRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	renderer PDFRenderer,
	publisher Publisher,
	logger *zap.Logger,
) BillService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &billService{
		builder: &quoteBuilder{
			cfg:         cfg,
			eventRepo:   eventRepo,
			catalogRepo: catalogRepo,
			rateRepo:    rateRepo,
			taxRepo:     taxRepo,
		},
		billRepo:  billRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		renderer:  renderer,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// --- Implementation ---

// CreateBill freezes the current quote of an event under the next number of the year.
func (s *billService) CreateBill(ctx context.Context, userID, eventID string, req CreateDocumentRequest) (DocumentResponse, error) {
	quote, _, err := s.builder.build(ctx, eventID, req.discount())
	if err != nil {
		return DocumentResponse{}, err
	}

	date := s.now()
	record := quote.ToModelRecord(date, parseUserID(userID))
	frozen, err := freezeRecord(record)
	if err != nil {
		return DocumentResponse{}, err
	}

	bill := &model.Bill{
		Year:              date.Year(),
		Date:              date,
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
		seq, err := s.billRepo.NextSequence(txCtx, bill.Year)
		if err != nil {
			return fmt.Errorf("failed to allocate bill number: %w", err)
		}
		number, err := billing.CreateBillNumber(date, seq)
		if err != nil {
			return err
		}
		bill.Sequence = seq
		bill.Number = number

		if err := s.billRepo.Create(txCtx, bill); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fmt.Errorf("%w: %s", ErrDuplicateBillNumber, number)
			}
			return fmt.Errorf("failed to create bill: %w", err)
		}

		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionCreateBill, bill.ID.String(), bill.Number, map[string]any{
			"event_id":   bill.EventID.String(),
			"due_amount": record.DueAmount,
			"currency":   bill.Currency,
		}))
	})
	if err != nil {
		return DocumentResponse{}, err
	}

	s.logger.Info("bill created",
		zap.String("number", bill.Number),
		zap.String("event_id", bill.EventID.String()),
		zap.String("due_amount", record.DueAmount),
	)
	res := toBillResponse(*bill)
	s.publisher.Publish("bill.created", res)
	return res, nil
}

func (s *billService) ListBills(ctx context.Context, page, limit int) ([]DocumentResponse, int64, error) {
	bills, total, err := s.billRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	res := make([]DocumentResponse, 0, len(bills))
	for _, b := range bills {
		res = append(res, toBillResponse(b))
	}
	return res, total, nil
}

func (s *billService) GetBill(ctx context.Context, id string) (DocumentResponse, error) {
	billID, err := parseID(id, "bill")
	if err != nil {
		return DocumentResponse{}, err
	}
	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		return DocumentResponse{}, fmt.Errorf("failed to load bill %s: %w", billID, err)
	}
	return toBillResponse(*bill), nil
}

func (s *billService) DeleteBill(ctx context.Context, userID, id string) error {
	billID, err := parseID(id, "bill")
	if err != nil {
		return err
	}

	var number string
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		bill, err := s.billRepo.FindByID(txCtx, billID)
		if err != nil {
			return fmt.Errorf("failed to load bill %s: %w", billID, err)
		}
		number = bill.Number
		if err := s.billRepo.Delete(txCtx, billID); err != nil {
			return fmt.Errorf("failed to delete bill: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionDeleteBill, billID.String(), bill.Number, map[string]any{
			"event_id": bill.EventID.String(),
		}))
	})
	if err != nil {
		return err
	}

	s.logger.Info("bill deleted", zap.String("number", number))
	s.publisher.Publish("bill.deleted", map[string]string{"id": billID.String(), "number": number})
	return nil
}

// RenderBillPDF prints the event quote. When the event was already billed, the document
// carries the latest bill number and date, and its discount unless one is given.
func (s *billService) RenderBillPDF(ctx context.Context, eventID, discount string) ([]byte, string, error) {
	event, err := s.builder.loadEvent(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	date := s.now()
	var number string
	latest, err := s.billRepo.FindLatestForEvent(ctx, event.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, "", fmt.Errorf("failed to load latest bill: %w", err)
	default:
		number = latest.Number
		date = latest.Date
		if discount == "" {
			discount = latest.DiscountRate.String()
		}
	}

	quote, err := s.builder.quoteFor(ctx, event, discount)
	if err != nil {
		return nil, "", err
	}
	data := quote.ToTemplateData(date)
	data.Number = number

	pdf, err := s.renderer.Render(&data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render bill: %w", err)
	}

	filename := fmt.Sprintf("quote-%s.pdf", event.ID)
	if number != "" {
		filename = fmt.Sprintf("bill-%s.pdf", number)
	}
	return pdf, filename, nil
}
