package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier é quem de fato entrega a notificação (SMTP em produção).
type Notifier interface {
	NotifyInstallerPending(evt NotificationEvent) error
	NotifyInstallerApproved(evt NotificationEvent) error
}

// Worker consome a fila de notificações e chama o Notifier. Roda numa
// goroutine própria; falha de entrega nunca volta para o caller HTTP.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var evt NotificationEvent
			if err := json.Unmarshal(d.Body, &evt); err != nil {
				log.Printf("[WORKER] JSON inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.dispatch(evt); err != nil {
				log.Printf("[WORKER] erro ao notificar (%s): %s", evt.Type, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("[WORKER] aguardando na fila %q", queueName)
	<-forever
}

func (w *Worker) dispatch(evt NotificationEvent) error {
	switch evt.Type {
	case EventInstallerPending:
		return w.Notifier.NotifyInstallerPending(evt)
	case EventInstallerApproved:
		return w.Notifier.NotifyInstallerApproved(evt)
	default:
		// Tipo desconhecido: dá Ack e segue, não há o que reprocessar.
		log.Printf("[WORKER] evento desconhecido: %s", evt.Type)
		return nil
	}
}
