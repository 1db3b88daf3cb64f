// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"numclass-server/commons"
	"numclass-server/models"
	"numclass-server/rabbitmq"
)

// readNumbers returns the positional arguments, or one number per line of r
// when there are none. Blank lines are skipped.
func readNumbers(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var numbers []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			numbers = append(numbers, line)
		}
	}
	return numbers, scanner.Err()
}

func buildMessages(numbers []string, country string) ([][]byte, error) {
	bodies := make([][]byte, 0, len(numbers))
	for _, n := range numbers {
		qn := models.NewQueuedNumber(n)
		if country != "" {
			qn.Country = &country
		}
		body, err := json.Marshal(qn)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", n, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func main() {
	cfg := rabbitmq.Config{}
	var country string
	flag.StringVar(&cfg.AMQPURL, "url", "", "AMQP URL (default $AMQP_URL)")
	flag.StringVar(&cfg.Exchange, "exchange", "", "Exchange to publish queued numbers to")
	flag.StringVar(&cfg.BindingKey, "routing-key", "", "Routing key")
	flag.StringVar(&country, "country", "", "Ask for a validity verdict for this country")
	flag.String("env-file", "", "Load environment variables from file")
	flag.Parse()

	commons.LoadEnvFile()
	commons.InitLogger()

	numbers, err := readNumbers(flag.Args(), os.Stdin)
	if err != nil {
		commons.Logger.Fatalf("Failed to read phone numbers: %v", err)
	}
	bodies, err := buildMessages(numbers, country)
	if err != nil {
		commons.Logger.Fatal(err)
	}

	client, err := rabbitmq.NewClient(rabbitmq.ConfigFromEnv(cfg))
	if err != nil {
		commons.Logger.Fatalf("Publisher init failed: %v", err)
	}
	defer client.Close()

	for _, body := range bodies {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Enqueue(ctx, body)
		cancel()
		if err != nil {
			commons.Logger.Fatalf("Failed to enqueue: %v", err)
		}
	}
	commons.Logger.Infof("Enqueued %d phone numbers", len(bodies))
}
