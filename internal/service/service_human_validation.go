package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-humans/internal/validators"
	"github.com/MKhiriev/go-humans/models"
)

// HumanValidationService rejects malformed input before it reaches the
// wrapped HumanService.
type HumanValidationService struct {
	inner     HumanService
	validator validators.Validator
}

func NewHumanValidationService() HumanServiceWrapper {
	return &HumanValidationService{
		validator: validators.NewHumanValidator(),
	}
}

func (v *HumanValidationService) List(ctx context.Context) ([]models.Human, error) {
	return v.inner.List(ctx)
}

func (v *HumanValidationService) Get(ctx context.Context, id int64) (models.Human, error) {
	if id <= 0 {
		return models.Human{}, fmt.Errorf("%w: %d", ErrInvalidHumanID, id)
	}

	return v.inner.Get(ctx, id)
}

func (v *HumanValidationService) Create(ctx context.Context, input models.HumanInput) (models.Human, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Human{}, fmt.Errorf("error during human validation before saving: %w", err)
	}

	return v.inner.Create(ctx, input)
}

func (v *HumanValidationService) Update(ctx context.Context, id int64, input models.HumanInput) (models.Human, error) {
	if id <= 0 {
		return models.Human{}, fmt.Errorf("%w: %d", ErrInvalidHumanID, id)
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Human{}, fmt.Errorf("error during human validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, input)
}

func (v *HumanValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHumanID, id)
	}

	return v.inner.Delete(ctx, id)
}

func (v *HumanValidationService) Wrap(wrapper HumanService) HumanService {
	v.inner = wrapper
	return v
}
