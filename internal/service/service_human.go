package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/store"
	"github.com/MKhiriev/go-humans/models"
)

// humanService converts request inputs into [models.Human] records and
// delegates persistence to the repository. Input is expected to be
// validated by a wrapping HumanValidationService.
type humanService struct {
	humanRepository store.HumanRepository

	logger *logger.Logger
}

func NewHumanService(humanRepository store.HumanRepository, logger *logger.Logger) HumanService {
	return &humanService{
		humanRepository: humanRepository,
		logger:          logger,
	}
}

func (s *humanService) List(ctx context.Context) ([]models.Human, error) {
	humans, err := s.humanRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing humans: %w", err)
	}

	return humans, nil
}

func (s *humanService) Get(ctx context.Context, id int64) (models.Human, error) {
	human, err := s.humanRepository.Get(ctx, id)
	if err != nil {
		return models.Human{}, fmt.Errorf("error getting human %d: %w", id, err)
	}

	return human, nil
}

func (s *humanService) Create(ctx context.Context, input models.HumanInput) (models.Human, error) {
	human, err := s.humanRepository.Create(ctx, input.ToHuman(0))
	if err != nil {
		return models.Human{}, fmt.Errorf("error creating human: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", human.ID).Msg("human created")
	return human, nil
}

func (s *humanService) Update(ctx context.Context, id int64, input models.HumanInput) (models.Human, error) {
	human, err := s.humanRepository.Update(ctx, input.ToHuman(id))
	if err != nil {
		return models.Human{}, fmt.Errorf("error updating human %d: %w", id, err)
	}

	return human, nil
}

func (s *humanService) Delete(ctx context.Context, id int64) error {
	if err := s.humanRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting human %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("human deleted")
	return nil
}
