package municipality

import (
	"context"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/validator"
	"github.com/Pesokrava/tournament_registry/internal/usecase"
)

// Service handles municipality business logic
type Service struct {
	repo     domain.MunicipalityRepository
	cache    usecase.Cache
	notifier *usecase.Notifier
	logger   *logger.Logger
}

// NewService creates a new municipality service
func NewService(
	repo domain.MunicipalityRepository,
	cache usecase.Cache,
	notifier *usecase.Notifier,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   log,
	}
}

// Create creates a new municipality
func (s *Service) Create(ctx context.Context, m *domain.Municipality) error {
	if err := validator.Get().Struct(m); err != nil {
		s.logger.Debugf("Municipality validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptMunicipality, err)
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("Failed to create municipality", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptMunicipality, domain.ChangeCreated, m.ID)

	s.logger.WithFields(map[string]any{
		"municipality_id": m.ID,
		"region_id":       m.RegionID,
	}).Info("Municipality created successfully")

	return nil
}

// GetByID retrieves a municipality by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	return usecase.ReadThrough(ctx, s.cache, s.logger, domain.ConceptMunicipality, id,
		func(ctx context.Context) (*domain.Municipality, error) {
			return s.repo.GetByID(ctx, id)
		})
}

// List retrieves a paginated list of municipalities, optionally for one region
func (s *Service) List(ctx context.Context, regionID *int64, limit, offset int) ([]*domain.Municipality, int, error) {
	limit, offset = usecase.ClampPage(limit, offset)

	municipalities, err := s.repo.List(ctx, regionID, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list municipalities", err)
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, regionID)
	if err != nil {
		s.logger.Error("Failed to count municipalities", err)
		return nil, 0, err
	}

	return municipalities, total, nil
}

// Update updates an existing municipality
func (s *Service) Update(ctx context.Context, m *domain.Municipality) error {
	if err := validator.Get().Struct(m); err != nil {
		s.logger.Debugf("Municipality validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptMunicipality, err)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("Failed to update municipality", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptMunicipality, domain.ChangeUpdated, m.ID)

	s.logger.WithFields(map[string]any{
		"municipality_id": m.ID,
	}).Info("Municipality updated successfully")

	return nil
}

// Delete removes a municipality
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete municipality", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptMunicipality, domain.ChangeDeleted, id)

	s.logger.WithFields(map[string]any{
		"municipality_id": id,
	}).Info("Municipality deleted successfully")

	return nil
}
