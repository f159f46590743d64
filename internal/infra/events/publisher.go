package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/salaoflow/booking-service/internal/domain"
)

const routingKeyAppointmentCreated = "appointment.created"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher интерфейс публикации доменных событий
type Publisher interface {
	PublishAppointmentCreated(ctx context.Context, appointment *domain.Appointment) error
	Close() error
}

// appointmentCreatedEvent тело события о созданной записи
type appointmentCreatedEvent struct {
	AppointmentID  string    `json:"appointmentId"`
	CustomerID     string    `json:"customerId"`
	ServiceID      string    `json:"serviceId"`
	ProfessionalID string    `json:"professionalId"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AmqpPublisher публикует события в topic exchange RabbitMQ
type AmqpPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      Logger
}

// NewAmqpPublisher подключается к RabbitMQ и объявляет exchange
func NewAmqpPublisher(url, exchange string, log Logger) (*AmqpPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("events: failed to declare exchange %s: %w", exchange, err)
	}

	return &AmqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      log,
	}, nil
}

// PublishAppointmentCreated публикует событие о созданной записи
func (p *AmqpPublisher) PublishAppointmentCreated(ctx context.Context, appointment *domain.Appointment) error {
	event := appointmentCreatedEvent{
		AppointmentID:  appointment.ID,
		CustomerID:     appointment.CustomerID,
		ServiceID:      appointment.ServiceID,
		ProfessionalID: appointment.ProfessionalID,
		Date:           appointment.Date.Format(domain.DateFormat),
		Time:           appointment.Time.String(),
		Status:         string(appointment.Status),
		CreatedAt:      appointment.CreatedAt,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKeyAppointmentCreated,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("events: failed to publish %s: %w", routingKeyAppointmentCreated, err)
	}

	p.log.Info("events: published %s for appointment %s", routingKeyAppointmentCreated, appointment.ID)
	return nil
}

// Close закрывает канал и соединение с RabbitMQ
func (p *AmqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("events: failed to close channel: %w", err)
	}
	return p.conn.Close()
}

// NoopPublisher заглушка, когда публикация событий выключена
type NoopPublisher struct{}

// PublishAppointmentCreated ничего не делает
func (NoopPublisher) PublishAppointmentCreated(ctx context.Context, appointment *domain.Appointment) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}
