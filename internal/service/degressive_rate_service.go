package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
	"rentalbilling/internal/repository"
)

// --- DTOs ---

type DegressiveRateTierRequest struct {
	FromDay int    `json:"from_day" binding:"required,min=1" example:"2"`
	IsRate  bool   `json:"is_rate"`
	Value   string `json:"value" binding:"required" example:"75"`
}

type DegressiveRateRequest struct {
	Name      string                      `json:"name" binding:"required,max=64"`
	IsDefault bool                        `json:"is_default"`
	Tiers     []DegressiveRateTierRequest `json:"tiers" binding:"dive"`
}

type DegressiveRateTierResponse struct {
	FromDay int    `json:"from_day"`
	IsRate  bool   `json:"is_rate"`
	Value   string `json:"value"`
}

type DegressiveRateResponse struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	IsDefault bool                         `json:"is_default"`
	Tiers     []DegressiveRateTierResponse `json:"tiers"`
}

type DegressiveRatePreview struct {
	Days           int    `json:"days"`
	DegressiveRate string `json:"degressive_rate"`
}

//go:generate mockgen -source=degressive_rate_service.go -destination=../mocks/service/degressive_rate_service.go -package=mockservice

// --- Interface ---

type DegressiveRateService interface {
	List(ctx context.Context) ([]DegressiveRateResponse, error)
	Get(ctx context.Context, id string) (DegressiveRateResponse, error)
	Create(ctx context.Context, userID string, req DegressiveRateRequest) (DegressiveRateResponse, error)
	Update(ctx context.Context, userID, id string, req DegressiveRateRequest) (DegressiveRateResponse, error)
	Delete(ctx context.Context, userID, id string) error
	Preview(ctx context.Context, id string, days int) (DegressiveRatePreview, error)
}

type degressiveRateService struct {
	rateRepo  repository.DegressiveRateRepository
	eventRepo repository.EventRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewDegressiveRateService(
	rateRepo repository.DegressiveRateRepository,
	eventRepo repository.EventRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) DegressiveRateService {
	return &degressiveRateService{
		rateRepo:  rateRepo,
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		txManager: txManager,
	}
}

// --- Implementation ---

func toDegressiveRateResponse(rate model.DegressiveRate) DegressiveRateResponse {
	res := DegressiveRateResponse{
		ID:        rate.ID.String(),
		Name:      rate.Name,
		IsDefault: rate.IsDefault,
		Tiers:     make([]DegressiveRateTierResponse, 0, len(rate.Tiers)),
	}
	for _, t := range rate.Tiers {
		res.Tiers = append(res.Tiers, DegressiveRateTierResponse{FromDay: t.FromDay, IsRate: t.IsRate, Value: t.Value.String()})
	}
	return res
}

// toModel validates the tiers through the engine so stored curves are always computable.
func (req DegressiveRateRequest) toModel() (model.DegressiveRate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.DegressiveRate{}, fmt.Errorf("%w: name is required", billing.ErrInvalidDegressiveRate)
	}

	tiers := make([]billing.DegressiveRateTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		value, err := decimal.NewFromString(t.Value)
		if err != nil {
			return model.DegressiveRate{}, fmt.Errorf("%w: invalid value %q for day %d", billing.ErrInvalidDegressiveRate, t.Value, t.FromDay)
		}
		tiers = append(tiers, billing.DegressiveRateTier{FromDay: t.FromDay, IsRate: t.IsRate, Value: value})
	}
	curve, err := billing.NewDegressiveRateCurve(name, tiers)
	if err != nil {
		return model.DegressiveRate{}, err
	}

	rate := model.DegressiveRate{Name: name, IsDefault: req.IsDefault}
	for _, t := range curve.Tiers() {
		rate.Tiers = append(rate.Tiers, model.DegressiveRateTier{FromDay: t.FromDay, IsRate: t.IsRate, Value: t.Value})
	}
	return rate, nil
}

func (s *degressiveRateService) List(ctx context.Context) ([]DegressiveRateResponse, error) {
	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list degressive rates: %w", err)
	}
	res := make([]DegressiveRateResponse, 0, len(rates))
	for _, r := range rates {
		res = append(res, toDegressiveRateResponse(r))
	}
	return res, nil
}

func (s *degressiveRateService) find(ctx context.Context, id string) (*model.DegressiveRate, error) {
	rateID, err := parseID(id, "degressive rate")
	if err != nil {
		return nil, err
	}
	rate, err := s.rateRepo.FindByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load degressive rate %s: %w", rateID, err)
	}
	return rate, nil
}

func (s *degressiveRateService) Get(ctx context.Context, id string) (DegressiveRateResponse, error) {
	rate, err := s.find(ctx, id)
	if err != nil {
		return DegressiveRateResponse{}, err
	}
	return toDegressiveRateResponse(*rate), nil
}

func (s *degressiveRateService) Create(ctx context.Context, userID string, req DegressiveRateRequest) (DegressiveRateResponse, error) {
	rate, err := req.toModel()
	if err != nil {
		return DegressiveRateResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rateRepo.Create(txCtx, &rate); err != nil {
			return fmt.Errorf("failed to create degressive rate: %w", err)
		}
		if rate.IsDefault {
			if err := s.rateRepo.ClearDefault(txCtx, rate.ID); err != nil {
				return fmt.Errorf("failed to reset default degressive rate: %w", err)
			}
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionCreateDegressiveRate, rate.ID.String(), rate.Name, req))
	})
	if err != nil {
		return DegressiveRateResponse{}, err
	}
	return toDegressiveRateResponse(rate), nil
}

func (s *degressiveRateService) Update(ctx context.Context, userID, id string, req DegressiveRateRequest) (DegressiveRateResponse, error) {
	rateID, err := parseID(id, "degressive rate")
	if err != nil {
		return DegressiveRateResponse{}, err
	}
	updated, err := req.toModel()
	if err != nil {
		return DegressiveRateResponse{}, err
	}

	var rate *model.DegressiveRate
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rate, err = s.rateRepo.FindByID(txCtx, rateID)
		if err != nil {
			return fmt.Errorf("failed to load degressive rate %s: %w", rateID, err)
		}
		rate.Name = updated.Name
		rate.IsDefault = updated.IsDefault
		rate.Tiers = updated.Tiers
		if err := s.rateRepo.Update(txCtx, rate); err != nil {
			return fmt.Errorf("failed to update degressive rate: %w", err)
		}
		if rate.IsDefault {
			if err := s.rateRepo.ClearDefault(txCtx, rate.ID); err != nil {
				return fmt.Errorf("failed to reset default degressive rate: %w", err)
			}
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionUpdateDegressiveRate, rate.ID.String(), rate.Name, req))
	})
	if err != nil {
		return DegressiveRateResponse{}, err
	}
	return toDegressiveRateResponse(*rate), nil
}

// Delete refuses to remove the default curve or one still referenced by events.
func (s *degressiveRateService) Delete(ctx context.Context, userID, id string) error {
	rateID, err := parseID(id, "degressive rate")
	if err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		rate, err := s.rateRepo.FindByID(txCtx, rateID)
		if err != nil {
			return fmt.Errorf("failed to load degressive rate %s: %w", rateID, err)
		}
		if rate.IsDefault {
			return fmt.Errorf("%w: degressive rate %q", ErrIsDefault, rate.Name)
		}
		count, err := s.eventRepo.CountByDegressiveRate(txCtx, rateID)
		if err != nil {
			return fmt.Errorf("failed to count events: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: degressive rate %q is used by %d event(s)", ErrInUse, rate.Name, count)
		}
		if err := s.rateRepo.Delete(txCtx, rateID); err != nil {
			return fmt.Errorf("failed to delete degressive rate: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionDeleteDegressiveRate, rateID.String(), rate.Name, nil))
	})
}

// Preview evaluates a stored curve for a duration.
func (s *degressiveRateService) Preview(ctx context.Context, id string, days int) (DegressiveRatePreview, error) {
	rate, err := s.find(ctx, id)
	if err != nil {
		return DegressiveRatePreview{}, err
	}
	curve, err := toCurve(*rate)
	if err != nil {
		return DegressiveRatePreview{}, err
	}
	value, err := curve.ComputeForDays(days)
	if err != nil {
		return DegressiveRatePreview{}, err
	}
	return DegressiveRatePreview{Days: days, DegressiveRate: value.StringFixed(2)}, nil
}

