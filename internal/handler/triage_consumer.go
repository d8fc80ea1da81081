package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

type triageJob struct {
	message domain.ReportReceivedMessage
}

// TriageConsumer pulls report.received events off the triage queue and runs
// them through a bounded worker pool.
type TriageConsumer struct {
	triageService port.TriageService
	validate      *validator.Validate
	jobQueue      chan triageJob
	wg            sync.WaitGroup
	numWorkers    int
}

func NewTriageConsumer(
	triageService port.TriageService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *TriageConsumer {
	return &TriageConsumer{
		triageService: triageService,
		validate:      validate,
		jobQueue:      make(chan triageJob, queueSize),
		numWorkers:    numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *TriageConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d triage workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *TriageConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All triage workers stopped after drain")
	case <-ctx.Done():
		log.Info("Triage worker shutdown timed out")
	}
}

func (c *TriageConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[TriageWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[TriageWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
			if err := c.triageService.Run(jobCtx, job.message); err != nil {
				log.WithError(err).WithField("reportID", job.message.ReportID).Error("Report triage failed")
			}
			cancel()
		}
	}
}

func (c *TriageConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyReportReceived:
		err = c.handleReportReceived(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false)
		return
	}
	delivery.Ack(false)
}

func (c *TriageConsumer) handleReportReceived(_ context.Context, delivery *amqp.Delivery) error {
	var message domain.ReportReceivedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal report received message: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("report received message validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"reportID":      message.ReportID,
		"employeeEmail": message.EmployeeEmail,
		"receivedAt":    message.ReceivedAt,
	}).Info("Received report for triage")

	// Blocks when the queue is full, which is the backpressure we want.
	c.jobQueue <- triageJob{message: message}

	return nil
}
