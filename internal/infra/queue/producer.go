package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento que circulam na fila de notificações.
const (
	EventInstallerPending  = "installer.pending"
	EventInstallerApproved = "installer.approved"
)

// NotificationEvent é o payload publicado quando um cadastro entra na
// fila de revisão ou é aprovado. O worker transforma isso em email.
type NotificationEvent struct {
	Type string `json:"type"`

	InstallerID string   `json:"installer_id"`
	Name        string   `json:"nome"`
	Email       string   `json:"email"`
	CPF         string   `json:"cpf"`
	BirthDate   string   `json:"data_nascimento"`
	State       string   `json:"estado"`
	City        string   `json:"cidade"`
	Phone       string   `json:"telefone"`
	WhatsApp    string   `json:"whatsapp"`
	Specialties []string `json:"specialties"`
	ServiceMode string   `json:"tipo_atendimento"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, evt NotificationEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
