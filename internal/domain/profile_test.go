package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_Stamp(t *testing.T) {
	var a Audit
	operator := int64(17)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	a.Stamp(OpUpdate, &operator, at)

	require.NotNil(t, a.LastOperation)
	assert.Equal(t, "UPDATE", *a.LastOperation)
	assert.Equal(t, &operator, a.LastOperatorID)
	assert.Equal(t, at, *a.LastOperationAt)
}

func TestProfile_UserIDsKeepOrder(t *testing.T) {
	p := Profile{Users: []UserRef{{ID: 9}, {ID: 2}, {ID: 5}}}

	assert.Equal(t, []int64{9, 2, 5}, p.UserIDs())
}

func TestPhoneType_JSONKeepsAbsentFieldsNull(t *testing.T) {
	pt := PhoneType{ID: 1, Active: true}

	data, err := json.Marshal(pt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "description")
	assert.Nil(t, decoded["description"])
	assert.Nil(t, decoded["created_by"])
	assert.Nil(t, decoded["last_operation"])
	assert.Nil(t, decoded["last_operator_id"])
	assert.Nil(t, decoded["last_operation_at"])
}

func TestPhoneType_EmptyDescriptionIsNotAbsent(t *testing.T) {
	empty := ""
	pt := PhoneType{ID: 1, Description: &empty}

	data, err := json.Marshal(pt)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"description":""`)
}

func TestNewTokenResponse_DefaultsToBearer(t *testing.T) {
	tok := NewTokenResponse("abc", 3600)

	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, int64(3600), tok.ExpiresIn)
	assert.Equal(t, "abc", tok.AccessToken)
}

func TestNewChangeEvent(t *testing.T) {
	ev := NewChangeEvent(ConceptPhoneType, ChangeUpdated, 4)

	assert.Equal(t, "phone_type.updated", ev.EventType)
	assert.Equal(t, ConceptPhoneType, ev.Concept)
	assert.Equal(t, int64(4), ev.EntityID)
	assert.False(t, ev.Timestamp.IsZero())
}
