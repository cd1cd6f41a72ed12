package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

const profileColumns = `id, description, active, created_by, created_at,
	last_operation, last_operator_id, last_operation_at`

// ProfileRepository implements domain.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile and its users in one transaction
func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (description, active, created_by, created_at,
			last_operation, last_operator_id, last_operation_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	p.CreatedAt = time.Now()

	return r.inTx(ctx, domain.OpInsert, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(
			ctx,
			query,
			p.Description,
			p.Active,
			p.CreatedBy,
			p.CreatedAt,
			p.LastOperation,
			p.LastOperatorID,
			p.LastOperationAt,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return wrapError(domain.ConceptProfile, domain.OpInsert, err)
		}

		return r.insertUsers(ctx, tx, p.ID, p.Users, domain.OpInsert)
	})
}

// GetByID retrieves a profile by ID together with its users in position order
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewProfileNotFound(id)
		}
		return nil, domain.NewProfileOperationFailure(domain.OpFind, err)
	}

	usersQuery := `
		SELECT u.id, u.name
		FROM profile_users pu
		JOIN users u ON u.id = pu.user_id
		WHERE pu.profile_id = $1
		ORDER BY pu.position
	`

	p.Users = []domain.UserRef{}
	if err := r.db.SelectContext(ctx, &p.Users, usersQuery, id); err != nil {
		return nil, domain.NewProfileOperationFailure(domain.OpFind, err)
	}

	return &p, nil
}

// List retrieves a page of profiles ordered by description, without users
func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY description LIMIT $1 OFFSET $2`

	profiles := []*domain.Profile{}
	if err := r.db.SelectContext(ctx, &profiles, query, limit, offset); err != nil {
		return nil, domain.NewProfileOperationFailure(domain.OpList, err)
	}

	for _, p := range profiles {
		p.Users = []domain.UserRef{}
	}

	return profiles, nil
}

// Count returns the number of profiles
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, domain.NewProfileOperationFailure(domain.OpCount, err)
	}

	return count, nil
}

// Update updates a profile and replaces its users
func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET description = $1, active = $2, last_operation = $3,
			last_operator_id = $4, last_operation_at = $5
		WHERE id = $6
	`

	return r.inTx(ctx, domain.OpUpdate, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			query,
			p.Description,
			p.Active,
			p.LastOperation,
			p.LastOperatorID,
			p.LastOperationAt,
			p.ID,
		)
		if err != nil {
			return wrapError(domain.ConceptProfile, domain.OpUpdate, err)
		}
		if err := requireAffected(result, domain.ConceptProfile, domain.OpUpdate, p.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM profile_users WHERE profile_id = $1`, p.ID); err != nil {
			return domain.NewProfileOperationFailure(domain.OpUpdate, err)
		}

		return r.insertUsers(ctx, tx, p.ID, p.Users, domain.OpUpdate)
	})
}

// Deactivate marks a profile inactive and records who did it
func (r *ProfileRepository) Deactivate(ctx context.Context, id int64, operatorID *int64, at time.Time) error {
	query := `
		UPDATE profiles
		SET active = FALSE, last_operation = $1, last_operator_id = $2, last_operation_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, "DELETE", operatorID, at, id)
	if err != nil {
		return wrapError(domain.ConceptProfile, domain.OpDelete, err)
	}

	return requireAffected(result, domain.ConceptProfile, domain.OpDelete, id)
}

func (r *ProfileRepository) insertUsers(ctx context.Context, tx *sqlx.Tx, profileID int64, users []domain.UserRef, op string) error {
	query := `INSERT INTO profile_users (profile_id, user_id, position) VALUES ($1, $2, $3)`

	for position, u := range users {
		if _, err := tx.ExecContext(ctx, query, profileID, u.ID, position); err != nil {
			return wrapError(domain.ConceptProfile, op, err)
		}
	}

	return nil
}

// inTx runs fn in a transaction. Errors from fn are returned unchanged;
// begin and commit failures become operation failures of op.
func (r *ProfileRepository) inTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewProfileOperationFailure(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.NewProfileOperationFailure(op, err)
	}

	return nil
}
