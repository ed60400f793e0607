package notifications

import (
	"context"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

type notificationMessage struct {
	UserID  string `json:"user_id"`
	Event   string `json:"event"`
	Message string `json:"message"`
}

type notificationService struct {
	channel   *amqp091.Channel
	queueName string
	limiter   *rate.Limiter
}

// NewNotificationService declares the durable notification queue and
// returns a sink that publishes to it. Publishing is rate limited so a
// booking burst cannot flood the broker.
func NewNotificationService(conn *amqp091.Connection, queueName string, publishPerSecond int) (contracts.NotificationSink, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}
	_, err = channel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrQueuePublish(err)
	}
	return &notificationService{
		channel:   channel,
		queueName: queueName,
		limiter:   rate.NewLimiter(rate.Limit(publishPerSecond), publishPerSecond),
	}, nil
}

func (s *notificationService) Notify(ctx context.Context, userID, event, message string) error {
	err := s.limiter.Wait(ctx)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	body, err := json.Marshal(notificationMessage{
		UserID:  userID,
		Event:   event,
		Message: message,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",
		s.queueName,
		false,
		false,
		amqp091.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
