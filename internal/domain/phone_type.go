package domain

import (
	"context"
	"time"
)

// PhoneType represents a kind of contact phone (mobile, landline, ...)
type PhoneType struct {
	ID          int64   `json:"id" db:"id"`
	Description *string `json:"description" db:"description" validate:"omitempty,max=60"`
	Active      bool    `json:"active" db:"active"`
	Audit
}

var (
	ErrPhoneTypeNotFound        = sentinel(ConceptPhoneType, ScenarioNotFound)
	ErrPhoneTypeOperationFailed = sentinel(ConceptPhoneType, ScenarioOperationFailed)
)

// NewPhoneTypeOperationFailure reports a failed phone type operation
func NewPhoneTypeOperationFailure(operation string, cause error) *Error {
	return NewOperationFailure(ConceptPhoneType, operation, cause)
}

// NewPhoneTypeNotFound reports a missing phone type
func NewPhoneTypeNotFound(id int64) *Error {
	return NewNotFound(ConceptPhoneType, id)
}

// PhoneTypeRepository defines the interface for phone type data access
type PhoneTypeRepository interface {
	Create(ctx context.Context, pt *PhoneType) error
	GetByID(ctx context.Context, id int64) (*PhoneType, error)
	List(ctx context.Context, limit, offset int) ([]*PhoneType, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, pt *PhoneType) error
	Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error
}
