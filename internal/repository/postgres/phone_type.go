package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// PhoneTypeRepository implements domain.PhoneTypeRepository for PostgreSQL
type PhoneTypeRepository struct {
	db *sqlx.DB
}

// NewPhoneTypeRepository creates a new PostgreSQL phone type repository
func NewPhoneTypeRepository(db *sqlx.DB) *PhoneTypeRepository {
	return &PhoneTypeRepository{db: db}
}

// Create creates a new phone type
func (r *PhoneTypeRepository) Create(ctx context.Context, pt *domain.PhoneType) error {
	query := `
		INSERT INTO phone_types (description, active, created_by, created_at,
			last_operation, last_operator_id, last_operation_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	pt.CreatedAt = time.Now()

	err := r.db.QueryRowxContext(
		ctx,
		query,
		pt.Description,
		pt.Active,
		pt.CreatedBy,
		pt.CreatedAt,
		pt.LastOperation,
		pt.LastOperatorID,
		pt.LastOperationAt,
	).Scan(&pt.ID, &pt.CreatedAt)
	if err != nil {
		return wrapError(domain.ConceptPhoneType, domain.OpInsert, err)
	}

	return nil
}

// GetByID retrieves a phone type by ID
func (r *PhoneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.PhoneType, error) {
	query := `
		SELECT id, description, active, created_by, created_at,
			last_operation, last_operator_id, last_operation_at
		FROM phone_types
		WHERE id = $1
	`

	var pt domain.PhoneType
	err := r.db.GetContext(ctx, &pt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewPhoneTypeNotFound(id)
		}
		return nil, domain.NewPhoneTypeOperationFailure(domain.OpFind, err)
	}

	return &pt, nil
}

// List retrieves a page of phone types ordered by ID
func (r *PhoneTypeRepository) List(ctx context.Context, limit, offset int) ([]*domain.PhoneType, error) {
	query := `
		SELECT id, description, active, created_by, created_at,
			last_operation, last_operator_id, last_operation_at
		FROM phone_types
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	phoneTypes := []*domain.PhoneType{}
	if err := r.db.SelectContext(ctx, &phoneTypes, query, limit, offset); err != nil {
		return nil, domain.NewPhoneTypeOperationFailure(domain.OpList, err)
	}

	return phoneTypes, nil
}

// Count returns the number of phone types
func (r *PhoneTypeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM phone_types`); err != nil {
		return 0, domain.NewPhoneTypeOperationFailure(domain.OpCount, err)
	}

	return count, nil
}

// Update updates an existing phone type
func (r *PhoneTypeRepository) Update(ctx context.Context, pt *domain.PhoneType) error {
	query := `
		UPDATE phone_types
		SET description = $1, active = $2, last_operation = $3,
			last_operator_id = $4, last_operation_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		pt.Description,
		pt.Active,
		pt.LastOperation,
		pt.LastOperatorID,
		pt.LastOperationAt,
		pt.ID,
	)
	if err != nil {
		return wrapError(domain.ConceptPhoneType, domain.OpUpdate, err)
	}

	return requireAffected(result, domain.ConceptPhoneType, domain.OpUpdate, pt.ID)
}

// Deactivate marks a phone type inactive
func (r *PhoneTypeRepository) Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error {
	query := `
		UPDATE phone_types
		SET active = FALSE, last_operation = $1, last_operator_id = $2, last_operation_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, "DELETE", operatorID, at, id)
	if err != nil {
		return wrapError(domain.ConceptPhoneType, domain.OpDelete, err)
	}

	return requireAffected(result, domain.ConceptPhoneType, domain.OpDelete, id)
}
