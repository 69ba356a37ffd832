package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/pkg/sendgrid"
)

type EmailNotifier struct {
	email     sendgrid.EmailService
	recipient string
}

func NewEmailNotifier(email sendgrid.EmailService, recipient string) *EmailNotifier {
	return &EmailNotifier{email: email, recipient: recipient}
}

func (n *EmailNotifier) NotifyLowStock(ctx context.Context, event models.LowStockEvent) error {

	body := fmt.Sprintf("%s (SKU %s) is down to %d units, below the threshold of %d.",
		event.ProductName, event.SKU, event.Quantity, event.Threshold)

	msg := &sendgrid.Message{
		To:          n.recipient,
		Subject:     fmt.Sprintf("Low stock: %s", event.SKU),
		Content:     body,
		HTMLContent: "<p>" + html.EscapeString(body) + "</p>",
	}

	if err := n.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("low-stock email for %s: %w", event.SKU, err)
	}

	metrics.LowStockEvents.WithLabelValues("email", "delivered").Inc()

	return nil
}
