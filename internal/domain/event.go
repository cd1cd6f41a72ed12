package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChangeSubject is the subject change events are published on
const ChangeSubject = "tournament.events"

// Change kinds
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// ChangeEvent announces a write to one entity
type ChangeEvent struct {
	ID        uuid.UUID `json:"id"`
	EventType string    `json:"event_type"`
	Concept   Concept   `json:"concept"`
	EntityID  int64     `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeEvent creates an event of the form "<concept>.<kind>"
func NewChangeEvent(concept Concept, kind string, entityID int64) ChangeEvent {
	return ChangeEvent{
		ID:        uuid.New(),
		EventType: fmt.Sprintf("%s.%s", concept.Key(), kind),
		Concept:   concept,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
