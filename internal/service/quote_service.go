package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/config"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

// --- Quote building ---

// quoteBuilder assembles a booking snapshot and the pricing settings, then hands them to the
// billing engine. Bills, estimates and previews all go through it.
type quoteBuilder struct {
	cfg         *config.Config
	eventRepo   repository.EventRepository
	catalogRepo repository.CatalogRepository
	rateRepo    repository.DegressiveRateRepository
	taxRepo     repository.TaxRepository
}

func (b *quoteBuilder) settings(ctx context.Context) (billing.Settings, error) {
	var curve *billing.DegressiveRateCurve
	rate, err := b.rateRepo.FindDefault(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return billing.Settings{}, fmt.Errorf("failed to load default degressive rate: %w", err)
	default:
		if curve, err = toCurve(*rate); err != nil {
			return billing.Settings{}, err
		}
	}

	var taxes []billing.FlatTax
	tax, err := b.taxRepo.FindDefault(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return billing.Settings{}, fmt.Errorf("failed to load default tax: %w", err)
	default:
		taxes = toBillingTax(*tax).AsFlatArray()
	}

	return b.cfg.BillingSettings(curve, taxes), nil
}

func (b *quoteBuilder) loadEvent(ctx context.Context, rawID string) (*model.Event, error) {
	eventID, err := parseID(rawID, "event")
	if err != nil {
		return nil, err
	}
	event, err := b.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", eventID, err)
	}
	return event, nil
}

// build computes the quote of an event. An empty discount keeps the event's own rate.
func (b *quoteBuilder) build(ctx context.Context, eventID, discount string) (*billing.Quote, *model.Event, error) {
	event, err := b.loadEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	quote, err := b.quoteFor(ctx, event, discount)
	if err != nil {
		return nil, nil, err
	}
	return quote, event, nil
}

func (b *quoteBuilder) quoteFor(ctx context.Context, event *model.Event, discount string) (*billing.Quote, error) {
	rate := event.DiscountRate
	if raw := strings.TrimSpace(discount); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", billing.ErrInvalidDiscountRate, discount)
		}
		rate = parsed
	}

	categories, err := b.catalogRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	parks, err := b.catalogRepo.Parks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load parks: %w", err)
	}
	snapshot, err := toSnapshot(event, toCatalog(categories, parks))
	if err != nil {
		return nil, err
	}

	settings, err := b.settings(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := billing.NewQuote(snapshot, settings)
	if err != nil {
		return nil, fmt.Errorf("cannot bill event %s: %w", event.ID, err)
	}
	if err := quote.SetDiscountRate(rate); err != nil {
		return nil, err
	}
	return quote, nil
}

//go:generate mockgen -source=quote_service.go -destination=../mocks/service/quote_service.go -package=mockservice

// --- Interface ---

type QuoteService interface {
	GetEventQuote(ctx context.Context, eventID, discount string) (*billing.TemplateData, error)
}

type quoteService struct {
	builder *quoteBuilder
	now     func() time.Time
}

func NewQuoteService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	catalogRepo repository.CatalogRepository,
	rateRepo repository.DegressiveRateRepository,
	taxRepo repository.TaxRepository,
) QuoteService {
	return &quoteService{
		builder: &quoteBuilder{
			cfg:         cfg,
			eventRepo:   eventRepo,
			catalogRepo: catalogRepo,
			rateRepo:    rateRepo,
			taxRepo:     taxRepo,
		},
		now: time.Now,
	}
}

// --- Implementation ---

func (s *quoteService) GetEventQuote(ctx context.Context, eventID, discount string) (*billing.TemplateData, error) {
	quote, _, err := s.builder.build(ctx, eventID, discount)
	if err != nil {
		return nil, err
	}
	data := quote.ToTemplateData(s.now())
	return &data, nil
}
