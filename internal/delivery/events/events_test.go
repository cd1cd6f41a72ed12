package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
)

type fakeMsg struct {
	acked, naked int
}

func (m *fakeMsg) Ack(opts ...nats.AckOpt) error {
	m.acked++
	return nil
}

func (m *fakeMsg) Nak(opts ...nats.AckOpt) error {
	m.naked++
	return nil
}

func TestRedeliveryBackoff(t *testing.T) {
	assert.Nil(t, redeliveryBackoff(1))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, redeliveryBackoff(4))
}

func TestChangeStream(t *testing.T) {
	cfg := changeStream()

	assert.Equal(t, StreamName, cfg.Name)
	assert.Equal(t, []string{domain.ChangeSubject}, cfg.Subjects)
	assert.Equal(t, nats.WorkQueuePolicy, cfg.Retention)
}

func TestCacheWorkerConsumer(t *testing.T) {
	cfg := cacheWorkerConsumer()

	assert.Equal(t, ConsumerName, cfg.Durable)
	assert.Equal(t, nats.AckExplicitPolicy, cfg.AckPolicy)
	assert.Equal(t, StreamSubjects, cfg.FilterSubject)
	// JetStream rejects a BackOff longer than MaxDeliver
	assert.Len(t, cfg.BackOff, cfg.MaxDeliver-1)
}

func TestDecodeChange(t *testing.T) {
	data, err := json.Marshal(domain.NewChangeEvent(domain.ConceptProfile, domain.ChangeUpdated, 5))
	require.NoError(t, err)

	event, err := DecodeChange(data)

	require.NoError(t, err)
	assert.Equal(t, domain.ConceptProfile, event.Concept)
	assert.Equal(t, int64(5), event.EntityID)
	assert.Equal(t, "profile.updated", event.EventType)
}

func TestDecodeChange_Rejects(t *testing.T) {
	_, err := DecodeChange([]byte("{"))
	assert.Error(t, err)

	_, err = DecodeChange([]byte(`{"event_type":"profile.updated","concept":"profile"}`))
	assert.Error(t, err)
}

func TestChangeLogHandler(t *testing.T) {
	handler := ChangeLogHandler(logger.New("test"))

	data, _ := json.Marshal(domain.NewChangeEvent(domain.ConceptMunicipality, domain.ChangeCreated, 1))
	assert.NoError(t, handler(data))
	assert.Error(t, handler([]byte("not json")))
}

func TestSettle(t *testing.T) {
	log := logger.New("test")

	ok := &fakeMsg{}
	settle(ok, nil, func([]byte) error { return nil }, log)
	assert.Equal(t, 1, ok.acked)
	assert.Zero(t, ok.naked)

	failed := &fakeMsg{}
	settle(failed, nil, func([]byte) error { return errors.New("boom") }, log)
	assert.Zero(t, failed.acked)
	assert.Equal(t, 1, failed.naked)
}
