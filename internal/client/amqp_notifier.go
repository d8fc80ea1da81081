package client

import (
	"context"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier announces stored reports on the report exchange so triage
// tooling can pick them up.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyReportReceived(ctx context.Context, message *domain.ReportReceivedMessage) error {
	return n.publisher.Publish(ctx, domain.ReportExchange, domain.RoutingKeyReportReceived, message)
}
