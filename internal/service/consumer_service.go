package service

import (
	"context"
	"encoding/json"

	"commerce-chatbot-be/internal/dto"
	"commerce-chatbot-be/internal/pkg/logger"
	"commerce-chatbot-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService listens on the order-placed topic and sends the
// confirmation email. Delivery is best-effort; a failed email never
// blocks or retries the order itself.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.OrderPlacedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("notification", "failed to unmarshal order placed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("notification", "processing order confirmation", map[string]interface{}{
		"order_id": payload.OrderId,
		"email":    payload.Email,
	})

	err := cs.emailService.SendOrderConfirmation(
		payload.Email,
		payload.CustomerName,
		payload.ProductName,
		payload.Quantity,
		payload.TotalPrice,
		payload.OrderId,
	)
	if err != nil {
		// Best-effort delivery: ack anyway, the failure is already
		// logged by the mailer.
		msg.Ack()
		return
	}

	msg.Ack()
}
