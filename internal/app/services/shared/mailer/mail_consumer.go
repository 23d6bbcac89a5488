package mailer

import (
	"context"

	drivermailer "clinicbook-service/internal/app/drivers/mailer"
	"clinicbook-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailConsumer drains the mailer queue and hands each payload to SMTP.
type MailConsumer struct {
	channel *amqp091.Channel
	service *mailerService
	queue   string
	log     *zap.Logger
}

func NewMailConsumer(client *drivermailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (*MailConsumer, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &MailConsumer{
		channel: channel,
		service: &mailerService{Channel: channel, Client: client, Queue: queue},
		queue:   queue,
		log:     logger,
	}, nil
}

// Run blocks until the context is cancelled or the channel closes.
func (c *MailConsumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return c.channel.Close()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(delivery)
		}
	}
}

func (c *MailConsumer) handle(delivery amqp091.Delivery) {
	payload := new(requests.EmailPayload)
	err := json.Unmarshal(delivery.Body, payload)
	if err != nil {
		c.log.Error("mailConsumer.handle cannot decode payload", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	err = c.service.DeliverEmail(payload)
	if err != nil {
		c.log.Error("mailConsumer.handle delivery failed",
			zap.String("subject", payload.Subject),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}
	delivery.Ack(false)
}
