package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"commerce-chatbot-be/internal/pkg/logger"
)

type IEmailService interface {
	SendOrderConfirmation(toEmail, customerName, productName string, quantity int, totalPrice string, orderId uint) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	log         logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail string, log logger.ILogger) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		log:         log,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail, customerName, productName string, quantity int, totalPrice string, orderId uint) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d Confirmation", orderId))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you for your order, %s!</h2>
			<p>We received your order and it is now being processed.</p>
			<ul>
				<li>Order ID: <strong>%d</strong></li>
				<li>Product: %s</li>
				<li>Quantity: %d</li>
				<li>Total: $%s</li>
			</ul>
			<p>You can check the status anytime by asking the chatbot for your order status.</p>
		</div>
	`, customerName, orderId, productName, quantity, totalPrice)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("mailer", "failed to send order confirmation", map[string]interface{}{
			"to":       toEmail,
			"order_id": orderId,
			"error":    err.Error(),
		})
		return err
	}

	s.log.Info("mailer", "order confirmation sent", map[string]interface{}{
		"to":       toEmail,
		"order_id": orderId,
	})
	return nil
}
