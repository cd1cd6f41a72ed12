package domain

import (
	"context"
)

// Municipality represents a municipality that hosts tournament venues
type Municipality struct {
	ID          int64  `json:"id" db:"id"`
	RegionID    int64  `json:"region_id" db:"region_id" validate:"required,gt=0"`
	Description string `json:"description" db:"description" validate:"required,min=1,max=120"`
}

var (
	ErrMunicipalityNotFound        = sentinel(ConceptMunicipality, ScenarioNotFound)
	ErrMunicipalityOperationFailed = sentinel(ConceptMunicipality, ScenarioOperationFailed)
)

// NewMunicipalityOperationFailure reports a failed municipality operation
func NewMunicipalityOperationFailure(operation string, cause error) *Error {
	return NewOperationFailure(ConceptMunicipality, operation, cause)
}

// NewMunicipalityNotFound reports a missing municipality
func NewMunicipalityNotFound(id int64) *Error {
	return NewNotFound(ConceptMunicipality, id)
}

// MunicipalityRepository defines the interface for municipality data access.
// Implementations return *Error values tagged ConceptMunicipality.
type MunicipalityRepository interface {
	// Create inserts a municipality and fills its ID
	Create(ctx context.Context, m *Municipality) error

	// GetByID retrieves a municipality by ID
	GetByID(ctx context.Context, id int64) (*Municipality, error)

	// List retrieves a page of municipalities, optionally restricted to one region
	List(ctx context.Context, regionID *int64, limit, offset int) ([]*Municipality, error)

	// Count returns the number of municipalities, optionally restricted to one region
	Count(ctx context.Context, regionID *int64) (int, error)

	// Update updates an existing municipality
	Update(ctx context.Context, m *Municipality) error

	// Delete removes a municipality
	Delete(ctx context.Context, id int64) error
}
