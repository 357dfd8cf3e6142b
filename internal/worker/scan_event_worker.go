package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"plantcare-api/internal/model"
	"plantcare-api/internal/repository"
)

// ScanEventWorker drains the scan event queue into the scan_events
// table. It runs for the process lifetime; losing an event only loses a
// row of the audit trail, never a prediction record.
type ScanEventWorker struct {
	conn      *amqp.Connection
	repo      *repository.ScanEventRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScanEventWorker(conn *amqp.Connection, repo *repository.ScanEventRepository, queueName string) *ScanEventWorker {
	return &ScanEventWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *ScanEventWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.ScanEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode scan event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.repo.Create(&event); err != nil {
					log.Printf("worker persist scan event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *ScanEventWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
