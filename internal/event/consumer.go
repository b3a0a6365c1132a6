package event

// Background consumer that drains the foh.events queue and appends one
// line per event to logs/events.log.  It stands in for connected-client
// delivery: anything tailing the file (or a future websocket bridge
// consuming the same queue) sees every state change in order.

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartConsumer connects to RabbitMQ, declares the foh.events queue
// (durable), and starts consuming messages.  It runs a reconnect loop
// with exponential backoff and keeps running indefinitely, logging any
// processing errors while rejecting the offending message so the
// server continues operating.
func StartConsumer() error {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("event-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("event-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("event-consumer: set QoS failed: %v", err)
	}

	_, err = ch.QueueDeclare(eventQueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(eventQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("event-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "events.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line, err := FormatLogLine(time.Now().UTC(), ev)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLogLine renders one event as a single log line.  Deletions
// carry only the entity id; everything else embeds the compact JSON of
// the affected entity.
func FormatLogLine(at time.Time, ev Event) (string, error) {
	if ev.Data == nil {
		return fmt.Sprintf("[%s] %s | id=%d\n", at.Format(time.RFC3339), ev.Type, ev.ID), nil
	}
	payload, err := json.Marshal(ev.Data)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return fmt.Sprintf("[%s] %s | %s\n", at.Format(time.RFC3339), ev.Type, payload), nil
}
