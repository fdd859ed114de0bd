package queue

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	q := NewInMemoryQueue()

	var wg sync.WaitGroup
	wg.Add(1)
	var got SendJob
	require.NoError(t, q.Subscribe(TopicCampaignSends, func(payload any) error {
		got = payload.(SendJob)
		wg.Done()
		return nil
	}))

	job := SendJob{CampaignID: "c-1", Sent: 900, Failed: 100}
	require.NoError(t, q.Publish(TopicCampaignSends, job))
	wg.Wait()

	assert.Equal(t, job, got)
}

func TestPublishWithoutSubscriberErrs(t *testing.T) {
	q := NewInMemoryQueue()

	err := q.Publish("nowhere", SendJob{})

	assert.Error(t, err)
}

func TestPublishRetriesFailedHandler(t *testing.T) {
	q := NewInMemoryQueue()

	var mu sync.Mutex
	attempts := 0
	done := make(chan struct{})
	require.NoError(t, q.Subscribe(TopicCampaignSends, func(payload any) error {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 2 {
			return assert.AnError
		}
		close(done)
		return nil
	}))

	require.NoError(t, q.Publish(TopicCampaignSends, SendJob{CampaignID: "c-1"}))
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}

func TestMockSenderSucceedsRoughlyNineInTen(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	failures := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if err := MockSender(r); err != nil {
			failures++
		}
	}

	assert.InDelta(t, n/10, failures, n/50, "about 10% of sends fail")
}
