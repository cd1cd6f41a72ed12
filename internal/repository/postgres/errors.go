package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

// wrapError converts a driver failure of op into the concept's domain error.
// Constraint violations become conflicts; everything else is an operation failure.
func wrapError(concept domain.Concept, op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation", "foreign_key_violation":
			return domain.NewConflict(concept, err)
		}
	}
	return domain.NewOperationFailure(concept, op, err)
}
