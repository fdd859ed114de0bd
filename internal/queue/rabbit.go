package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// RabbitQueue publishes jobs to RabbitMQ for the out-of-process worker.
// Consumption happens in cmd/worker over the amqp API directly, so
// Subscribe is not supported here.
type RabbitQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitQueue(url string) (*RabbitQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitQueue{conn: conn, ch: ch}, nil
}

func (q *RabbitQueue) Publish(topic string, payload any) error {
	queue, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return q.ch.Publish(
		"",
		queue.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *RabbitQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("subscribe is handled by the worker binary, not the publisher")
}

func (q *RabbitQueue) Close() {
	q.ch.Close()
	q.conn.Close()
}

var _ Queue = (*RabbitQueue)(nil)
