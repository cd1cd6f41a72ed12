package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

var profileRowColumns = []string{
	"id", "description", "active", "created_by", "created_at",
	"last_operation", "last_operator_id", "last_operation_at",
}

func TestProfileRepository_Create_WithUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))
	mock.ExpectExec("INSERT INTO profile_users").
		WithArgs(int64(5), int64(9), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO profile_users").
		WithArgs(int64(5), int64(2), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	p := &domain.Profile{
		Description: "Referees",
		Active:      true,
		Users:       []domain.UserRef{{ID: 9}, {ID: 2}},
	}
	err := repo.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, createdAt, p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create_UnknownUserRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))
	mock.ExpectExec("INSERT INTO profile_users").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Profile{
		Description: "Referees",
		Users:       []domain.UserRef{{ID: 404}},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrProfile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	beginErr := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(beginErr)

	err := repo.Create(context.Background(), &domain.Profile{Description: "Referees"})

	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.OpInsert, de.Operation())
	assert.Same(t, beginErr, de.Cause())
}

func TestProfileRepository_GetByID_LoadsUsersInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	creator := int64(1)
	mock.ExpectQuery("FROM profiles WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(profileRowColumns).
			AddRow(int64(5), "Referees", true, creator, time.Now(), nil, nil, nil))
	mock.ExpectQuery("FROM profile_users").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(9), "Ana").
			AddRow(int64(2), "Bruno"))

	p, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Referees", p.Description)
	require.NotNil(t, p.CreatedBy)
	assert.Equal(t, creator, *p.CreatedBy)
	assert.Nil(t, p.LastOperation)
	assert.Nil(t, p.LastOperationAt)
	assert.Equal(t, []domain.UserRef{{ID: 9, Name: "Ana"}, {ID: 2, Name: "Bruno"}}, p.Users)
}

func TestProfileRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery("FROM profiles WHERE id").
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	_, err := repo.GetByID(context.Background(), 77)

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.NotErrorIs(t, err, domain.ErrMunicipality)
}

func TestProfileRepository_Update_ReplacesUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE profiles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM profile_users").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO profile_users").
		WithArgs(int64(5), int64(3), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domain.Profile{
		ID:          5,
		Description: "Referees",
		Users:       []domain.UserRef{{ID: 3}},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Update_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE profiles").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &domain.Profile{ID: 5, Description: "Referees"})

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Deactivate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	operator := int64(8)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE profiles").
		WithArgs("DELETE", int64(8), at, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Deactivate(context.Background(), 5, &operator, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_List_EmptyUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery("FROM profiles ORDER BY description").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(profileRowColumns).
			AddRow(int64(1), "Admins", true, nil, time.Now(), "INSERT", nil, time.Now()))

	list, err := repo.List(context.Background(), 20, 0)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Users)
	assert.Empty(t, list[0].Users)
	require.NotNil(t, list[0].LastOperation)
	assert.Equal(t, "INSERT", *list[0].LastOperation)
}
