package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

func TestValidate_MunicipalityReportsJSONNames(t *testing.T) {
	err := Get().Struct(&domain.Municipality{})
	require.Error(t, err)

	assert.ElementsMatch(t, []string{"region_id", "description"}, Fields(err))
}

func TestValidate_ProfileUsersDive(t *testing.T) {
	p := &domain.Profile{
		Description: "Referees",
		Users:       []domain.UserRef{{ID: 3}, {ID: 0}},
	}

	err := Get().Struct(p)
	require.Error(t, err)
	assert.Equal(t, []string{"id"}, Fields(err))
}

func TestValidate_PhoneTypeOptionalDescription(t *testing.T) {
	assert.NoError(t, Get().Struct(&domain.PhoneType{}))
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(errors.New("other")))
}
