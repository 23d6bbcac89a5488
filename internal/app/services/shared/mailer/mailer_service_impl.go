package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"regexp"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/drivers/mailer"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
}

func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// DeliverEmail pushes a payload straight through SMTP. The queue consumer
// calls this after dequeueing what SendEmail published.
func (s *mailerService) DeliverEmail(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = s.Client.Username
	}
	for _, to := range payload.To {
		msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, payload.Subject, payload.HTMLCode))
		addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
		err := smtp.SendMail(addr, s.Client.Auth, from, []string{to}, msg)
		if err != nil {
			return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
		}
	}
	return nil
}

func (s *mailerService) ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
