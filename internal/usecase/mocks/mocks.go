// Package mocks holds testify mocks for the use case ports.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// Cache is a mock implementation of usecase.Cache
type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, concept domain.Concept, id int64, dst any) error {
	args := m.Called(ctx, concept, id, dst)
	return args.Error(0)
}

func (m *Cache) Add(ctx context.Context, concept domain.Concept, id int64, v any) (bool, error) {
	args := m.Called(ctx, concept, id, v)
	return args.Bool(0), args.Error(1)
}

func (m *Cache) Invalidate(ctx context.Context, concept domain.Concept, id int64) error {
	args := m.Called(ctx, concept, id)
	return args.Error(0)
}

// Publisher is a mock implementation of usecase.EventPublisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, subject string, data []byte) error {
	args := m.Called(ctx, subject, data)
	return args.Error(0)
}

// MunicipalityRepository is a mock implementation of domain.MunicipalityRepository
type MunicipalityRepository struct {
	mock.Mock
}

func (m *MunicipalityRepository) Create(ctx context.Context, mu *domain.Municipality) error {
	args := m.Called(ctx, mu)
	return args.Error(0)
}

func (m *MunicipalityRepository) GetByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}

func (m *MunicipalityRepository) List(ctx context.Context, regionID *int64, limit, offset int) ([]*domain.Municipality, error) {
	args := m.Called(ctx, regionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Municipality), args.Error(1)
}

func (m *MunicipalityRepository) Count(ctx context.Context, regionID *int64) (int, error) {
	args := m.Called(ctx, regionID)
	return args.Int(0), args.Error(1)
}

func (m *MunicipalityRepository) Update(ctx context.Context, mu *domain.Municipality) error {
	args := m.Called(ctx, mu)
	return args.Error(0)
}

func (m *MunicipalityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProfileRepository is a mock implementation of domain.ProfileRepository
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *ProfileRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProfileRepository) Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error {
	args := m.Called(ctx, id, operatorID, at)
	return args.Error(0)
}

// PhoneTypeRepository is a mock implementation of domain.PhoneTypeRepository
type PhoneTypeRepository struct {
	mock.Mock
}

func (m *PhoneTypeRepository) Create(ctx context.Context, pt *domain.PhoneType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *PhoneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.PhoneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhoneType), args.Error(1)
}

func (m *PhoneTypeRepository) List(ctx context.Context, limit, offset int) ([]*domain.PhoneType, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PhoneType), args.Error(1)
}

func (m *PhoneTypeRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *PhoneTypeRepository) Update(ctx context.Context, pt *domain.PhoneType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *PhoneTypeRepository) Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error {
	args := m.Called(ctx, id, operatorID, at)
	return args.Error(0)
}
