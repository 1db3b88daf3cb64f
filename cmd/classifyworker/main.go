// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"numclass-server/commons"
	"numclass-server/db"
	"numclass-server/handlers"
	"numclass-server/models"
	"numclass-server/phone"
	"numclass-server/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type Worker struct {
	table  phone.Table
	prefix string
	out    publisher
	// record stores the audit log entry of a published result; nil disables it
	record func([]models.ClassificationLog) error
}

// Handle classifies one delivery and publishes the result. Malformed bodies
// are rejected without requeue; publish failures, including cancellation on
// shutdown, are requeued.
func (w *Worker) Handle(ctx context.Context, msg amqp.Delivery) {
	cn, err := handlers.ClassifyQueuedNumber(w.table, msg.Body)
	if err != nil {
		commons.Logger.Warnf("Rejecting message: %v", err)
		if err := msg.Nack(false, false); err != nil {
			commons.Logger.Errorf("Nack failed: %v", err)
		}
		return
	}

	body, err := json.Marshal(cn)
	if err != nil {
		commons.Logger.Errorf("Failed to encode classified number %s: %v", cn.Mid, err)
		_ = msg.Nack(false, false)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	key := handlers.ResultRoutingKey(w.prefix, cn)
	if err := w.out.Publish(pubCtx, key, body); err != nil {
		commons.Logger.Errorf("Failed to publish classified number %s: %v", cn.Mid, err)
		if err := msg.Nack(false, true); err != nil {
			commons.Logger.Errorf("Nack failed: %v", err)
		}
		return
	}

	if w.record != nil {
		if err := w.record([]models.ClassificationLog{handlers.NewQueuedClassificationLog(cn)}); err != nil {
			commons.Logger.Error(err)
		}
	}

	if err := msg.Ack(false); err != nil {
		commons.Logger.Errorf("Ack failed: %v", err)
		return
	}
	commons.Logger.Debugf("Classified %s -> %s", cn.Mid, key)
}

func (w *Worker) Run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				commons.Logger.Info("Message channel closed")
				return
			}
			w.Handle(ctx, msg)
		case <-ctx.Done():
			commons.Logger.Info("Stop signal received")
			return
		}
	}
}

func main() {
	cfg := rabbitmq.Config{}
	flag.StringVar(&cfg.AMQPURL, "url", "", "AMQP URL (default $AMQP_URL)")
	flag.StringVar(&cfg.Exchange, "exchange", "", "Exchange to consume queued numbers from")
	flag.StringVar(&cfg.BindingKey, "binding-key", "", "Binding key")
	flag.StringVar(&cfg.QueueName, "queue", "", "Queue name (optional)")
	flag.StringVar(&cfg.ResultExchange, "result-exchange", "", "Exchange classified numbers are published to")
	flag.StringVar(&cfg.ResultPrefix, "result-prefix", "", "Routing key prefix for classified numbers")
	record := flag.Bool("record", false, "Record classification logs in the database")
	flag.String("env-file", "", "Load environment variables from file")
	flag.Parse()

	commons.LoadEnvFile()
	commons.InitLogger()
	commons.InitNumberingPlans()

	client, err := rabbitmq.NewClient(rabbitmq.ConfigFromEnv(cfg))
	if err != nil {
		commons.Logger.Fatalf("Worker init failed: %v", err)
	}
	defer client.Close()

	if err := client.DeclareAndBind(); err != nil {
		commons.Logger.Fatalf("Queue setup failed: %v", err)
	}

	msgs, err := client.Consume()
	if err != nil {
		commons.Logger.Fatalf("Worker start failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := &Worker{table: commons.Plans.Table, prefix: client.ResultPrefix(), out: client}
	if *record {
		db.InitDB()
		worker.record = handlers.CreateClassificationLogs
	}
	commons.Logger.Info("Classify worker is running. Press Ctrl+C to exit.")
	worker.Run(ctx, msgs)
	commons.Logger.Info("Classify worker stopped.")
}
