package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis поднимает miniredis и клиент к нему
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisExternalPublisher_Publish(t *testing.T) {
	// Подготовка
	mr, client := newTestRedis(t)
	publisher := NewRedisExternalPublisher(client)
	alert := &models.Alert{
		ID:        uuid.New(),
		TouristID: "tourist-1",
		Type:      models.AlertTypeSOS,
		Severity:  models.SeverityCritical,
		Message:   "manual sos",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	// Действие
	err := publisher.Publish(context.Background(), models.NewAlertEvent(alert))

	// Проверки: событие лежит в очереди и восстанавливается из JSON
	require.NoError(t, err)
	payload, err := mr.Lpop(externalAlertQueueKey)
	require.NoError(t, err)

	var event models.AlertEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))
	assert.Equal(t, alert.ID, event.AlertID)
	assert.Equal(t, "tourist-1", event.TouristID)
	assert.Equal(t, models.SeverityCritical, event.Severity)
}

func TestRedisExternalPublisher_RedisDown(t *testing.T) {
	// Подготовка
	mr, client := newTestRedis(t)
	mr.Close()
	publisher := NewRedisExternalPublisher(client)

	// Действие
	err := publisher.Publish(context.Background(), models.AlertEvent{AlertID: uuid.New()})

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to publish alert event")
}

func TestExternalWorker_DeliversEvent(t *testing.T) {
	// Подготовка: поднимаем внешнюю службу и проверяем тело с подписью
	_, client := newTestRedis(t)

	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- r
		bodies <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		ExternalAlertURL:        server.URL,
		ExternalAlertSecret:     "test-secret",
		ExternalAlertTimeout:    time.Second,
		ExternalAlertMaxRetries: 3,
		ExternalAlertBaseDelay:  10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := NewExternalWorker(client, logger, cfg)
	worker.Start(ctx)

	// Действие: публикуем событие в очередь
	publisher := NewRedisExternalPublisher(client)
	event := models.NewAlertEvent(&models.Alert{ID: uuid.New(), TouristID: "tourist-1", Severity: models.SeverityCritical})
	require.NoError(t, publisher.Publish(ctx, event))

	// Проверки: воркер доставил событие с HMAC подписью
	select {
	case req := <-received:
		body := <-bodies
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, generateHMACSHA256(string(body), "test-secret"), req.Header.Get("X-Alert-Signature"))

		var delivered models.AlertEvent
		require.NoError(t, json.Unmarshal(body, &delivered))
		assert.Equal(t, event.AlertID, delivered.AlertID)
	case <-time.After(3 * time.Second):
		t.Fatal("external service did not receive the alert event in time")
	}
}

func TestExternalWorker_RetriesOnServerError(t *testing.T) {
	// Подготовка: служба отвечает 500 дважды, затем 200
	_, client := newTestRedis(t)

	attempts := make(chan int, 3)
	var count int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		attempts <- count
		if count < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		ExternalAlertURL:        server.URL,
		ExternalAlertTimeout:    time.Second,
		ExternalAlertMaxRetries: 3,
		ExternalAlertBaseDelay:  5 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := NewExternalWorker(client, logger, cfg)
	worker.Start(ctx)

	// Действие
	publisher := NewRedisExternalPublisher(client)
	require.NoError(t, publisher.Publish(ctx, models.AlertEvent{AlertID: uuid.New()}))

	// Проверки: третья попытка дошла
	deadline := time.After(3 * time.Second)
	for {
		select {
		case n := <-attempts:
			if n == 3 {
				return
			}
		case <-deadline:
			t.Fatal("worker did not retry delivery in time")
		}
	}
}
