package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/uav_fleet_system/internal/config"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisPublisher_Publish(t *testing.T) {
	mr, client := setupTestRedis(t)
	publisher := NewRedisPublisher(client)

	require.NoError(t, publisher.Publish(context.Background(), NewChangeEvent("drones", ActionCreated, "d1")))
	require.NoError(t, publisher.Publish(context.Background(), NewChangeEvent("drones", ActionDeleted, "d1")))

	items, err := mr.List(queueKey)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// LPUSH кладет в голову, worker забирает с хвоста: первым уходит created
	var oldest ChangeEvent
	require.NoError(t, json.Unmarshal([]byte(items[1]), &oldest))
	assert.Equal(t, "drones", oldest.Resource)
	assert.Equal(t, ActionCreated, oldest.Action)
	assert.Equal(t, "d1", oldest.ID)
	assert.False(t, oldest.Timestamp.IsZero())
}

func TestWorker_RunDeliversQueuedEvents(t *testing.T) {
	_, client := setupTestRedis(t)

	received := make(chan ChangeEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event ChangeEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err == nil {
			received <- event
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWorker(client, logger.NewNop(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.NoError(t, NewRedisPublisher(client).Publish(ctx, NewChangeEvent("incidents", ActionUpdated, "i1")))

	select {
	case event := <-received:
		assert.Equal(t, "incidents", event.Resource)
		assert.Equal(t, ActionUpdated, event.Action)
		assert.Equal(t, "i1", event.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
