package queue

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"
)

// TopicCampaignSends carries one job per submitted campaign.
const TopicCampaignSends = "campaign_sends"

// SendJob describes a simulated delivery batch for the worker to chew on.
type SendJob struct {
	CampaignID string `json:"campaign_id"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process pub/sub queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartCampaignSendSubscriber logs each simulated send batch as it comes
// through. There is no real delivery behind the queue; the worker binary
// runs the same jobs through MockSender for a per-message simulation.
func StartCampaignSendSubscriber(q Queue) {
	go func() {
		err := q.Subscribe(TopicCampaignSends, func(payload any) error {
			job, ok := payload.(SendJob)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected SendJob")
				return nil // no retry
			}

			log.Printf("📩 campaign %s: simulated delivery, sent=%d failed=%d\n",
				job.CampaignID, job.Sent, job.Failed)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for campaign_sends:", err)
		}
	}()
}

// MockSender simulates sending one message with 90% success. The original
// mock-only create flow flipped the same coin.
func MockSender(r *rand.Rand) error {
	if r.Float64() < 0.9 {
		return nil // success
	}
	return fmt.Errorf("mock sending failed")
}
