package phonetype

import (
	"context"
	"time"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/validator"
	"github.com/Pesokrava/tournament_registry/internal/usecase"
)

// Service handles phone type business logic
type Service struct {
	repo     domain.PhoneTypeRepository
	cache    usecase.Cache
	notifier *usecase.Notifier
	logger   *logger.Logger
	now      func() time.Time
}

// NewService creates a new phone type service
func NewService(
	repo domain.PhoneTypeRepository,
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

// Create creates a new active phone type
func (s *Service) Create(ctx context.Context, pt *domain.PhoneType, operatorID *int64) error {
	if err := validator.Get().Struct(pt); err != nil {
		s.logger.Debugf("Phone type validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptPhoneType, err)
	}

	pt.Active = true
	pt.CreatedBy = operatorID
	pt.Stamp(domain.OpInsert, operatorID, s.now())

	if err := s.repo.Create(ctx, pt); err != nil {
		s.logger.Error("Failed to create phone type", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptPhoneType, domain.ChangeCreated, pt.ID)
	s.logger.With("phone_type_id", pt.ID).Info("Phone type created successfully")

	return nil
}

// GetByID retrieves a phone type by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.PhoneType, error) {
	return usecase.ReadThrough(ctx, s.cache, s.logger, domain.ConceptPhoneType, id,
		func(ctx context.Context) (*domain.PhoneType, error) {
			return s.repo.GetByID(ctx, id)
		})
}

// List retrieves a paginated list of phone types
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.PhoneType, int, error) {
	limit, offset = usecase.ClampPage(limit, offset)

	phoneTypes, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list phone types", err)
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count phone types", err)
		return nil, 0, err
	}

	return phoneTypes, total, nil
}

// Update updates an existing phone type
func (s *Service) Update(ctx context.Context, pt *domain.PhoneType, operatorID *int64) error {
	if err := validator.Get().Struct(pt); err != nil {
		s.logger.Debugf("Phone type validation failed: %v", err)
		return domain.NewInvalidInput(domain.ConceptPhoneType, err)
	}

	pt.Stamp(domain.OpUpdate, operatorID, s.now())

	if err := s.repo.Update(ctx, pt); err != nil {
		s.logger.Error("Failed to update phone type", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptPhoneType, domain.ChangeUpdated, pt.ID)
	s.logger.With("phone_type_id", pt.ID).Info("Phone type updated successfully")

	return nil
}

// Delete deactivates a phone type
func (s *Service) Delete(ctx context.Context, id int64, operatorID *int64) error {
	if err := s.repo.Deactivate(ctx, id, operatorID, s.now()); err != nil {
		s.logger.Error("Failed to deactivate phone type", err)
		return err
	}

	s.notifier.Changed(ctx, domain.ConceptPhoneType, domain.ChangeDeleted, id)
	s.logger.With("phone_type_id", id).Info("Phone type deactivated successfully")

	return nil
}
