package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// MunicipalityRepository implements domain.MunicipalityRepository for PostgreSQL
type MunicipalityRepository struct {
	db *sqlx.DB
}

// NewMunicipalityRepository creates a new PostgreSQL municipality repository
func NewMunicipalityRepository(db *sqlx.DB) *MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

// Create creates a new municipality
func (r *MunicipalityRepository) Create(ctx context.Context, m *domain.Municipality) error {
	query := `
		INSERT INTO municipalities (region_id, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, m.RegionID, m.Description).Scan(&m.ID)
	if err != nil {
		return wrapError(domain.ConceptMunicipality, domain.OpInsert, err)
	}

	return nil
}

// GetByID retrieves a municipality by ID
func (r *MunicipalityRepository) GetByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	query := `SELECT id, region_id, description FROM municipalities WHERE id = $1`

	var m domain.Municipality
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewMunicipalityNotFound(id)
		}
		return nil, domain.NewMunicipalityOperationFailure(domain.OpFind, err)
	}

	return &m, nil
}

// List retrieves a page of municipalities ordered by description
func (r *MunicipalityRepository) List(ctx context.Context, regionID *int64, limit, offset int) ([]*domain.Municipality, error) {
	query := `
		SELECT id, region_id, description
		FROM municipalities
		WHERE ($1::bigint IS NULL OR region_id = $1)
		ORDER BY description
		LIMIT $2 OFFSET $3
	`

	municipalities := []*domain.Municipality{}
	err := r.db.SelectContext(ctx, &municipalities, query, regionID, limit, offset)
	if err != nil {
		return nil, domain.NewMunicipalityOperationFailure(domain.OpList, err)
	}

	return municipalities, nil
}

// Count returns the number of municipalities
func (r *MunicipalityRepository) Count(ctx context.Context, regionID *int64) (int, error) {
	query := `SELECT COUNT(*) FROM municipalities WHERE ($1::bigint IS NULL OR region_id = $1)`

	var count int
	if err := r.db.GetContext(ctx, &count, query, regionID); err != nil {
		return 0, domain.NewMunicipalityOperationFailure(domain.OpCount, err)
	}

	return count, nil
}

// Update updates an existing municipality
func (r *MunicipalityRepository) Update(ctx context.Context, m *domain.Municipality) error {
	query := `
		UPDATE municipalities
		SET region_id = $1, description = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, m.RegionID, m.Description, m.ID)
	if err != nil {
		return wrapError(domain.ConceptMunicipality, domain.OpUpdate, err)
	}

	return requireAffected(result, domain.ConceptMunicipality, domain.OpUpdate, m.ID)
}

// Delete removes a municipality
func (r *MunicipalityRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM municipalities WHERE id = $1`, id)
	if err != nil {
		return wrapError(domain.ConceptMunicipality, domain.OpDelete, err)
	}

	return requireAffected(result, domain.ConceptMunicipality, domain.OpDelete, id)
}

// requireAffected turns a write that touched no row into a not-found error
func requireAffected(result sql.Result, concept domain.Concept, op string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.NewOperationFailure(concept, op, err)
	}

	if rowsAffected == 0 {
		return domain.NewNotFound(concept, id)
	}

	return nil
}
