// tagrunner is the external analytics consumer: it drains the
// storefront's event queue over HTTP and forwards every entry, in queue
// order, to a Kafka topic for the tag-management pipeline. Entries are
// relayed as raw JSON so the wire shapes the storefront produced reach
// the pipeline untouched.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

var pollInterval = flag.Duration("poll", 5*time.Second, "drain poll interval")

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	flag.Parse()
}

func main() {
	serverURL := getEnv("SERVER_URL", "http://localhost:8080")
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getEnv("KAFKA_TOPIC", "storefront.datalayer")

	writer := &kafka.Writer{
		Addr:  kafka.TCP(brokers...),
		Topic: topic,
		// The queue is order-sensitive (reset marker, then event); a fixed
		// key keeps every entry on one partition so order survives.
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	log.Printf("tagrunner started: draining %s into %s", serverURL, topic)

	ctx := context.Background()
	for {
		if err := drainOnce(ctx, serverURL, writer); err != nil {
			log.Printf("drain failed: %v", err)
		}
		time.Sleep(*pollInterval)
	}
}

func drainOnce(ctx context.Context, serverURL string, writer *kafka.Writer) error {
	resp, err := http.Post(serverURL+"/analytics/drain", "application/json", nil)
	if err != nil {
		return fmt.Errorf("drain request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("drain request: unexpected status %d", resp.StatusCode)
	}

	var entries []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return fmt.Errorf("decode entries: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, kafka.Message{
			Key:   []byte("datalayer"),
			Value: entry,
		})
	}

	if err := writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("forward entries: %w", err)
	}

	log.Printf("forwarded %d entries", len(entries))
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
