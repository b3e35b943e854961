package utils

import (
	"fmt"
	"log/slog"

	"github.com/keighl/postmark"

	"github.com/pushkarbw/sample-e-com-sub003/models"
)

// EmailService sends transactional mail through Postmark. With no API
// token configured it degrades to a no-op so the API runs without mail
// credentials.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService builds an EmailService. An empty apiToken disables
// sending.
func NewEmailService(apiToken, sender string) *EmailService {
	es := &EmailService{sender: sender}
	if apiToken == "" {
		slog.Warn("POSTMARK_API_TOKEN not set, order confirmation emails disabled")
		return es
	}
	es.client = postmark.NewClient(apiToken, "")
	return es
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the user.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order *models.Order) error {
	subject := fmt.Sprintf("Order Confirmation %s", order.OrderNumber)
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your purchase!</strong><br><br>Your order <strong>%s</strong> has been placed successfully.<br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong>",
		order.OrderNumber,
		order.Total,
		order.PaymentMethod,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
