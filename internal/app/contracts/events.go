package contracts

import (
	"context"
	"time"
)

// AppointmentEvent is published after an appointment write is persisted.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID int       `json:"appointment_id"`
	Student       string    `json:"student,omitempty"`
	InterviewerID int       `json:"interviewer_id,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
}
