package events

import (
	"context"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type appointmentEventPublisher struct {
	mu      sync.Mutex
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

// NewAppointmentEventPublisher opens a dedicated channel and declares the
// durable queue the appointment events are routed to.
func NewAppointmentEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &appointmentEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *appointmentEventPublisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event_type":       event.Type,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
	}

	// amqp091 channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("appointmentEventPublisher.PublishAppointmentEvent published",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingEventKey, event.Type),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.Int(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
