package domain

import (
	"context"
	"strings"
	"time"
)

// Audit holds the bookkeeping columns shared by administrative entities.
// Absent values stay nil; they are never replaced by zero values.
type Audit struct {
	CreatedBy       *int64     `json:"created_by" db:"created_by"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	LastOperation   *string    `json:"last_operation" db:"last_operation"`
	LastOperatorID  *int64     `json:"last_operator_id" db:"last_operator_id"`
	LastOperationAt *time.Time `json:"last_operation_at" db:"last_operation_at"`
}

// Stamp records operation by operatorID at the given time
func (a *Audit) Stamp(operation string, operatorID *int64, at time.Time) {
	kind := strings.ToUpper(operation)
	a.LastOperation = &kind
	a.LastOperatorID = operatorID
	a.LastOperationAt = &at
}

// UserRef references a user associated with a profile
type UserRef struct {
	ID   int64  `json:"id" db:"id" validate:"gt=0"`
	Name string `json:"name,omitempty" db:"name"`
}

// Profile represents an access profile granted to back-office users
type Profile struct {
	ID          int64  `json:"id" db:"id"`
	Description string `json:"description" db:"description" validate:"required,min=1,max=60"`
	Active      bool   `json:"active" db:"active"`
	Audit
	Users []UserRef `json:"users" db:"-" validate:"dive"`
}

// UserIDs returns the associated user IDs in order
func (p *Profile) UserIDs() []int64 {
	ids := make([]int64, len(p.Users))
	for i, u := range p.Users {
		ids[i] = u.ID
	}
	return ids
}

var (
	ErrProfileNotFound        = sentinel(ConceptProfile, ScenarioNotFound)
	ErrProfileOperationFailed = sentinel(ConceptProfile, ScenarioOperationFailed)
)

// NewProfileOperationFailure reports a failed profile operation
func NewProfileOperationFailure(operation string, cause error) *Error {
	return NewOperationFailure(ConceptProfile, operation, cause)
}

// NewProfileNotFound reports a missing profile
func NewProfileNotFound(id int64) *Error {
	return NewNotFound(ConceptProfile, id)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create inserts a profile together with its ordered users
	Create(ctx context.Context, p *Profile) error

	// GetByID retrieves a profile and its users
	GetByID(ctx context.Context, id int64) (*Profile, error)

	// List retrieves a page of profiles without their users
	List(ctx context.Context, limit, offset int) ([]*Profile, error)

	// Count returns the number of profiles
	Count(ctx context.Context) (int, error)

	// Update updates a profile and replaces its users
	Update(ctx context.Context, p *Profile) error

	// Deactivate marks a profile inactive, stamping the DELETE audit at the given time
	Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error
}
