package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	externalAlertQueueKey = "external_alert_events"
)

// RedisExternalPublisher - реализация ExternalPublisher через очередь
// Redis. Постановка в очередь и есть "попытка": доставку до внешней
// службы доводит фоновый воркер со своими ретраями.
type RedisExternalPublisher struct {
	redisClient *redis.Client
}

func NewRedisExternalPublisher(client *redis.Client) *RedisExternalPublisher {
	return &RedisExternalPublisher{redisClient: client}
}

// Publish публикует событие тревоги в очередь Redis
func (p *RedisExternalPublisher) Publish(ctx context.Context, event models.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, externalAlertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// ExternalWorker - фоновый воркер доставки событий тревог внешней
// экстренной службе
type ExternalWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewExternalWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *ExternalWorker {
	return &ExternalWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.ExternalAlertTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди событий
func (w *ExternalWorker) Start(ctx context.Context) {
	w.logger.Info("Starting external alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping external alert worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части очереди,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, externalAlertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(w.cfg.ExternalAlertTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event models.AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver доставляет одно событие с ретраями и экспоненциальной задержкой
func (w *ExternalWorker) deliver(ctx context.Context, event models.AlertEvent, rawPayload string) {
	log := w.logger.WithField("alert_id", event.AlertID).WithField("severity", event.Severity)
	log.Debug("Delivering alert event to external service...")

	if w.cfg.ExternalAlertURL == "" {
		log.Warn("External alert URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.ExternalAlertMaxRetries
	baseDelay := w.cfg.ExternalAlertBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.ExternalAlertURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create external alert request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// HMAC подпись, если секрет задан
		if w.cfg.ExternalAlertSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.ExternalAlertSecret)
			req.Header.Set("X-Alert-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to deliver alert event. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Alert event delivered to external service.")
			return
		}
		log.Warnf("External service responded with status %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver alert event after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
