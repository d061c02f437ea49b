package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/repository"
)

var (
	ErrNotFound            = repository.ErrNotFound
	ErrInUse               = errors.New("still used by events")
	ErrIsDefault           = errors.New("the default entry cannot be deleted")
	ErrDuplicateBillNumber = errors.New("bill number already allocated")
)

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s id %q", billing.ErrInvalidArgument, what, raw)
	}
	return id, nil
}
