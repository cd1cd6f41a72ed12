package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_ErrorAddsDomainFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production")

	log.Error("lookup failed", domain.NewMunicipalityNotFound(42))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "municipality", entry["concept"])
	assert.Equal(t, "not_found", entry["scenario"])
	assert.Equal(t, "42", entry["entity_id"])
	assert.Equal(t, "municipality with id 42 not found", entry["error"])
}

func TestLogger_ErrorWithPlainError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production")

	log.Error("boom", errors.New("plain"))

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "concept")
	assert.Equal(t, "plain", entry["error"])
}

func TestLogger_TestEnvSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "test")

	log.Info("quiet")
	log.Debugf("quieter %d", 1)

	assert.Zero(t, buf.Len())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production")

	log.WithFields(map[string]any{"entity_id": 7}).Info("saved")

	entry := decodeLine(t, &buf)
	assert.Equal(t, float64(7), entry["entity_id"])
	assert.Equal(t, "saved", entry["message"])
}
