package po

import (
	"encoding/json"
	"time"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"

	"github.com/google/uuid"
)

// OutboxEventPO Outbox event persistence object
// Implements the transactional outbox: events are stored with the state
// change that produced them and relayed later by the outbox worker.
type OutboxEventPO struct {
	ID         string    `gorm:"primaryKey;size:64"`
	EventKind  string    `gorm:"size:100;index;not null"`
	Payload    string    `gorm:"type:text;not null"` // JSON envelope
	Status     string    `gorm:"size:20;index;not null"`
	RetryCount int       `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (OutboxEventPO) TableName() string {
	return "outbox_events"
}

// EventStatus Outbox event status enum
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusPublished  EventStatus = "PUBLISHED"
	EventStatusFailed     EventStatus = "FAILED"
)

// envelope is the JSON document stored in Payload and handed to publishers
type envelope struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// FromEvent serialises event into a pending outbox row
func FromEvent(event shared.Event) (*OutboxEventPO, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(envelope{
		ID:         id.String(),
		Kind:       event.Kind(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    event.Payload(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEventPO{
		ID:         id.String(),
		EventKind:  event.Kind(),
		Payload:    string(data),
		Status:     string(EventStatusPending),
		OccurredAt: event.OccurredAt(),
	}, nil
}

// ToEventData decodes the stored envelope
func (p *OutboxEventPO) ToEventData() (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(p.Payload), &data); err != nil {
		return nil, err
	}
	return data, nil
}
