package profile

import (
	"context"
	"time"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/validator"
	"github.com/Pesokrava/tournament_registry/internal/usecase"
)

// Service handles profile business logic
type Service struct {
	repo     domain.ProfileRepository
	cache    usecase.Cache
	notifier *usecase.Notifier
	logger   *logger.Logger
	now      func() time.Time
}

// NewService creates a new profile service
func NewService(
	repo domain.ProfileRepository,
	cache usecase.Cache,
	notifier *usecase.Notifier,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// Create creates a new active profile on behalf of operatorID
func (s *Service) Create(ctx context.Context, p *domain.Profile, operatorID *int64) error {
	if err := validator.Get().Struct(p); err != nil {
		s.logger.Debugf("Profile validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptProfile, err)
	}

	p.Active = true
	p.CreatedBy = operatorID
	p.Stamp(domain.OpInsert, operatorID, s.now())

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create profile", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptProfile, domain.ChangeCreated, p.ID)

	s.logger.WithFields(map[string]any{
		"profile_id": p.ID,
		"users":      len(p.Users),
	}).Info("Profile created successfully")

	return nil
}

// GetByID retrieves a profile with its users
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return usecase.ReadThrough(ctx, s.cache, s.logger, domain.ConceptProfile, id,
		func(ctx context.Context) (*domain.Profile, error) {
			return s.repo.GetByID(ctx, id)
		})
}

// List retrieves a paginated list of profiles
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Profile, int, error) {
	limit, offset = usecase.ClampPage(limit, offset)

	profiles, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list profiles", err)
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count profiles", err)
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates a profile and replaces its users
func (s *Service) Update(ctx context.Context, p *domain.Profile, operatorID *int64) error {
	if err := validator.Get().Struct(p); err != nil {
		s.logger.Debugf("Profile validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptProfile, err)
	}

	p.Stamp(domain.OpUpdate, operatorID, s.now())

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to update profile", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptProfile, domain.ChangeUpdated, p.ID)

	s.logger.WithFields(map[string]any{
		"profile_id": p.ID,
		"active":     p.Active,
	}).Info("Profile updated successfully")

	return nil
}

// Delete deactivates a profile
func (s *Service) Delete(ctx context.Context, id int64, operatorID *int64) error {
	if err := s.repo.Deactivate(ctx, id, operatorID, s.now()); err != nil {
		s.logger.Error("Failed to deactivate profile", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptProfile, domain.ChangeDeleted, id)

	s.logger.WithFields(map[string]any{
		"profile_id": id,
	}).Info("Profile deactivated successfully")

	return nil
}
