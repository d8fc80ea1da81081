package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

// TopologyManager declares the report exchange and the triage queue bound to
// the report.received routing key.
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

func (t *TopologyManager) Setup() error {
	ch := t.client.Channel()

	if err := t.declareExchange(ch, domain.ReportExchange); err != nil {
		return err
	}

	if err := t.declareQueue(ch, domain.ReportTriageQueue); err != nil {
		return err
	}

	if err := t.bindQueue(ch, domain.ReportTriageQueue, domain.ReportExchange, domain.RoutingKeyReportReceived); err != nil {
		return err
	}

	log.Info("AMQP topology setup completed successfully")
	return nil
}

func (t *TopologyManager) declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
