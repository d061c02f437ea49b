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

type TaxComponentRequest struct {
	Name   string `json:"name" binding:"required,max=64"`
	IsRate bool   `json:"is_rate"`
	Value  string `json:"value" binding:"required" example:"5"`
}

// TaxRequest describes a leaf tax (IsRate and Value) or a group (Components).
type TaxRequest struct {
	Name       string                `json:"name" binding:"required,max=64"`
	IsGroup    bool                  `json:"is_group"`
	IsRate     bool                  `json:"is_rate"`
	Value      string                `json:"value" example:"20"`
	IsDefault  bool                  `json:"is_default"`
	Components []TaxComponentRequest `json:"components" binding:"dive"`
}

type TaxComponentResponse struct {
	Name   string `json:"name"`
	IsRate bool   `json:"is_rate"`
	Value  string `json:"value"`
}

type TaxResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	IsGroup    bool                   `json:"is_group"`
	IsRate     *bool                  `json:"is_rate"`
	Value      *string                `json:"value"`
	IsDefault  bool                   `json:"is_default"`
	Components []TaxComponentResponse `json:"components"`
}

//go:generate mockgen -source=tax_service.go -destination=../mocks/service/tax_service.go -package=mockservice

// --- Interface ---

type TaxService interface {
	List(ctx context.Context) ([]TaxResponse, error)
	Get(ctx context.Context, id string) (TaxResponse, error)
	Create(ctx context.Context, userID string, req TaxRequest) (TaxResponse, error)
	Update(ctx context.Context, userID, id string, req TaxRequest) (TaxResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type taxService struct {
	taxRepo   repository.TaxRepository
	eventRepo repository.EventRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewTaxService(
	taxRepo repository.TaxRepository,
	eventRepo repository.EventRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) TaxService {
	return &taxService{
		taxRepo:   taxRepo,
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		txManager: txManager,
	}
}

// --- Implementation ---

func toTaxResponse(tax model.Tax) TaxResponse {
	res := TaxResponse{
		ID:         tax.ID.String(),
		Name:       tax.Name,
		IsGroup:    tax.IsGroup,
		IsRate:     tax.IsRate,
		IsDefault:  tax.IsDefault,
		Components: make([]TaxComponentResponse, 0, len(tax.Components)),
	}
	if tax.Value.Valid {
		v := tax.Value.Decimal.String()
		res.Value = &v
	}
	for _, c := range tax.Components {
		res.Components = append(res.Components, TaxComponentResponse{Name: c.Name, IsRate: c.IsRate, Value: c.Value.String()})
	}
	return res
}

func parseTaxValue(name, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid value %q for %q", billing.ErrInvalidTaxValue, raw, name)
	}
	return value, nil
}

// toModel validates the request through the engine before it is stored.
func (req TaxRequest) toModel() (model.Tax, error) {
	name := strings.TrimSpace(req.Name)

	if !req.IsGroup {
		value, err := parseTaxValue(name, req.Value)
		if err != nil {
			return model.Tax{}, err
		}
		if _, err := billing.NewTax(name, req.IsRate, value); err != nil {
			return model.Tax{}, err
		}
		isRate := req.IsRate
		return model.Tax{
			Name:      name,
			IsRate:    &isRate,
			Value:     decimal.NewNullDecimal(value),
			IsDefault: req.IsDefault,
		}, nil
	}

	components := make([]billing.TaxComponent, 0, len(req.Components))
	for _, c := range req.Components {
		value, err := parseTaxValue(c.Name, c.Value)
		if err != nil {
			return model.Tax{}, err
		}
		components = append(components, billing.TaxComponent{Name: strings.TrimSpace(c.Name), IsRate: c.IsRate, Value: value})
	}
	if _, err := billing.NewTaxGroup(name, components); err != nil {
		return model.Tax{}, err
	}

	tax := model.Tax{Name: name, IsGroup: true, IsDefault: req.IsDefault}
	for i, c := range components {
		tax.Components = append(tax.Components, model.TaxComponent{Name: c.Name, IsRate: c.IsRate, Value: c.Value, Position: i})
	}
	return tax, nil
}

func (s *taxService) List(ctx context.Context) ([]TaxResponse, error) {
	taxes, err := s.taxRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	res := make([]TaxResponse, 0, len(taxes))
	for _, t := range taxes {
		res = append(res, toTaxResponse(t))
	}
	return res, nil
}

func (s *taxService) Get(ctx context.Context, id string) (TaxResponse, error) {
	taxID, err := parseID(id, "tax")
	if err != nil {
		return TaxResponse{}, err
	}
	tax, err := s.taxRepo.FindByID(ctx, taxID)
	if err != nil {
		return TaxResponse{}, fmt.Errorf("failed to load tax %s: %w", taxID, err)
	}
	return toTaxResponse(*tax), nil
}

func (s *taxService) Create(ctx context.Context, userID string, req TaxRequest) (TaxResponse, error) {
	tax, err := req.toModel()
	if err != nil {
		return TaxResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.taxRepo.Create(txCtx, &tax); err != nil {
			return fmt.Errorf("failed to create tax: %w", err)
		}
		if tax.IsDefault {
			if err := s.taxRepo.ClearDefault(txCtx, tax.ID); err != nil {
				return fmt.Errorf("failed to reset default tax: %w", err)
			}
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionCreateTax, tax.ID.String(), tax.Name, req))
	})
	if err != nil {
		return TaxResponse{}, err
	}
	return toTaxResponse(tax), nil
}

// Update only changes the tax definition. Events keep the taxes frozen on them until resynced.
func (s *taxService) Update(ctx context.Context, userID, id string, req TaxRequest) (TaxResponse, error) {
	taxID, err := parseID(id, "tax")
	if err != nil {
		return TaxResponse{}, err
	}
	updated, err := req.toModel()
	if err != nil {
		return TaxResponse{}, err
	}

	var tax *model.Tax
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		tax, err = s.taxRepo.FindByID(txCtx, taxID)
		if err != nil {
			return fmt.Errorf("failed to load tax %s: %w", taxID, err)
		}
		tax.Name = updated.Name
		tax.IsGroup = updated.IsGroup
		tax.IsRate = updated.IsRate
		tax.Value = updated.Value
		tax.IsDefault = updated.IsDefault
		tax.Components = updated.Components
		if err := s.taxRepo.Update(txCtx, tax); err != nil {
			return fmt.Errorf("failed to update tax: %w", err)
		}
		if tax.IsDefault {
			if err := s.taxRepo.ClearDefault(txCtx, tax.ID); err != nil {
				return fmt.Errorf("failed to reset default tax: %w", err)
			}
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionUpdateTax, tax.ID.String(), tax.Name, req))
	})
	if err != nil {
		return TaxResponse{}, err
	}
	return toTaxResponse(*tax), nil
}

func (s *taxService) Delete(ctx context.Context, userID, id string) error {
	taxID, err := parseID(id, "tax")
	if err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		tax, err := s.taxRepo.FindByID(txCtx, taxID)
		if err != nil {
			return fmt.Errorf("failed to load tax %s: %w", taxID, err)
		}
		if tax.IsDefault {
			return fmt.Errorf("%w: tax %q", ErrIsDefault, tax.Name)
		}
		count, err := s.eventRepo.CountByTax(txCtx, taxID)
		if err != nil {
			return fmt.Errorf("failed to count events: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: tax %q is used by %d event(s)", ErrInUse, tax.Name, count)
		}
		if err := s.taxRepo.Delete(txCtx, taxID); err != nil {
			return fmt.Errorf("failed to delete tax: %w", err)
		}
		return s.auditRepo.Log(txCtx, newAuditLog(userID, model.ActionDeleteTax, taxID.String(), tax.Name, nil))
	})
}
