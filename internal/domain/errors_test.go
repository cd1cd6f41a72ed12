package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MessageWithoutCause(t *testing.T) {
	for _, msg := range []string{"boom", "erro na operação", "x"} {
		err := New(msg)

		assert.Equal(t, msg, err.Message())
		assert.Equal(t, msg, err.Error())
		assert.Nil(t, err.Cause())
		assert.Nil(t, errors.Unwrap(err))
	}
}

func TestNew_EmptyMessageFallsBack(t *testing.T) {
	assert.Equal(t, TemplateBase, New("").Message())
	assert.Equal(t, "profile error", NewConceptError(ConceptProfile, "", nil).Message())
}

func TestWrap_KeepsCauseIdentity(t *testing.T) {
	cause := errors.New("connection reset")

	err := Wrap("lookup failed", cause)

	assert.Same(t, cause, err.Cause())
	assert.Same(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "lookup failed", err.Message())
	assert.Equal(t, "lookup failed: connection reset", err.Error())
}

func TestNewOperationFailure_Message(t *testing.T) {
	tests := []struct {
		concept Concept
		op      string
		want    string
	}{
		{ConceptMunicipality, OpUpdate, "error during the update operation for municipality"},
		{ConceptProfile, OpInsert, "error during the insert operation for profile"},
		{ConceptPhoneType, "archive", "error during the archive operation for phone type"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			first := NewOperationFailure(tt.concept, tt.op, nil)
			second := NewOperationFailure(tt.concept, tt.op, nil)

			assert.Equal(t, tt.want, first.Message())
			assert.Equal(t, first.Message(), second.Message())
			assert.Contains(t, first.Message(), tt.op)
			assert.Equal(t, tt.op, first.Operation())
		})
	}
}

func TestNewNotFound_MessageContainsIdentifier(t *testing.T) {
	ids := []any{int64(42), 7, "abc-123", uint(0)}

	for _, id := range ids {
		err := NewNotFound(ConceptProfile, id)
		text := fmt.Sprint(id)

		assert.Contains(t, err.Message(), text)
		assert.Equal(t, text, err.Identifier())
		assert.Nil(t, err.Cause())
	}
}

func TestScenarioError_TypeContainment(t *testing.T) {
	errs := []*Error{
		NewMunicipalityNotFound(1),
		NewMunicipalityOperationFailure(OpDelete, io.EOF),
		NewInvalidInput(ConceptMunicipality, nil),
		NewConflict(ConceptMunicipality, nil),
	}

	for _, err := range errs {
		assert.ErrorIs(t, err, ErrMunicipality)
		assert.ErrorIs(t, err, ErrDomain)

		var de *Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, ConceptMunicipality, de.Concept())
	}
}

func TestIs_ScenarioAndConceptSentinels(t *testing.T) {
	err := NewProfileNotFound(3)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NotErrorIs(t, err, ErrOperationFailed)
	assert.NotErrorIs(t, err, ErrMunicipalityNotFound)
	assert.NotErrorIs(t, err, ErrPhoneType)
}

func TestIs_ConstructedTargetMatchesOnlyItself(t *testing.T) {
	err := NewMunicipalityNotFound(42)

	assert.ErrorIs(t, err, err)
	assert.NotErrorIs(t, err, NewMunicipalityNotFound(7))
	assert.NotErrorIs(t, err, NewMunicipalityNotFound(42))
	assert.NotErrorIs(t, NewProfileNotFound(1), err)
}

func TestHasScenario_OutermostDecides(t *testing.T) {
	err := NewProfileOperationFailure(OpInsert, NewMunicipalityNotFound(7))

	assert.True(t, HasScenario(err, ScenarioOperationFailed))
	assert.False(t, HasScenario(err, ScenarioNotFound))
	assert.True(t, HasScenario(fmt.Errorf("handler: %w", NewPhoneTypeNotFound(1)), ScenarioNotFound))
	assert.False(t, HasScenario(errors.New("plain"), ScenarioNotFound))

	// errors.Is still reaches the cause
	assert.ErrorIs(t, err, ErrMunicipalityNotFound)
}

func TestOperationFailure_RoundTripCause(t *testing.T) {
	cause := &customCause{code: 5}

	err := NewPhoneTypeOperationFailure(OpInsert, cause)

	var got *customCause
	require.True(t, errors.As(err, &got))
	assert.Same(t, cause, got)
	assert.Same(t, cause, err.Cause())
}

func TestMunicipalityLookup_NotFoundScenario(t *testing.T) {
	lookup := func(id int64) (*Municipality, error) {
		return nil, NewMunicipalityNotFound(id)
	}

	_, err := lookup(42)
	require.Error(t, err)

	de, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf(TemplateNotFound, "municipality", "42"), de.Message())
	assert.Equal(t, "municipality with id 42 not found", de.Message())

	assert.True(t, errors.Is(err, ErrMunicipality), "caught at concept level")
	assert.False(t, errors.Is(err, ErrProfile), "unrelated concept must not catch it")
}

func TestMunicipalityWrite_OperationFailureScenario(t *testing.T) {
	ioErr := errors.New("write tcp 10.0.0.1:5432: broken pipe")

	write := func() error {
		return NewMunicipalityOperationFailure(OpUpdate, ioErr)
	}

	err := write()

	de, ok := AsError(err)
	require.True(t, ok)
	assert.Same(t, ioErr, de.Cause())
	assert.Contains(t, de.Message(), "update")
	assert.Contains(t, de.Message(), "municipality")
	assert.ErrorIs(t, err, ErrMunicipalityOperationFailed)
}

func TestAsError_FindsWrappedDomainError(t *testing.T) {
	inner := NewProfileNotFound(9)
	wrapped := fmt.Errorf("handler: %w", inner)

	de, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, de)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewProfileOperationFailure(OpFind, io.ErrUnexpectedEOF)))
	assert.False(t, IsRetryable(NewProfileOperationFailure(OpFind, context.Canceled)))
	assert.False(t, IsRetryable(NewProfileOperationFailure(OpFind, context.DeadlineExceeded)))
	assert.False(t, IsRetryable(NewProfileNotFound(1)))
	assert.False(t, IsRetryable(NewInvalidInput(ConceptProfile, nil)))
	assert.False(t, IsRetryable(io.EOF))
}

func TestTemplate_ArgsMatchPayload(t *testing.T) {
	format, args := NewNotFound(ConceptPhoneType, 12).Template()
	assert.Equal(t, TemplateNotFound, format)
	assert.Equal(t, []any{"phone type", "12"}, args)

	format, args = New("explicit").Template()
	assert.Equal(t, "explicit", format)
	assert.Empty(t, args)
}

func TestConcept_Key(t *testing.T) {
	assert.Equal(t, "phone_type", ConceptPhoneType.Key())
	assert.Equal(t, "municipality", ConceptMunicipality.Key())
}

type customCause struct {
	code int
}

func (c *customCause) Error() string {
	return fmt.Sprintf("driver error %d", c.code)
}
