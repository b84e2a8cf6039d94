package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/uav_fleet_system/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// Worker забирает события из очереди и доставляет их на WEBHOOK_URL
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *resty.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	httpClient := resty.New().
		SetTimeout(cfg.WebhookTimeout).
		SetRetryCount(cfg.WebhookMaxRetries-1).
		SetRetryWaitTime(cfg.WebhookBaseDelay).
		SetRetryMaxWaitTime(cfg.WebhookBaseDelay*time.Duration(1<<cfg.WebhookMaxRetries)).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500 || r.StatusCode() == 429
		})

	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient:  httpClient,
	}
}

// Run обрабатывает очередь до отмены ctx
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping webhook worker.")
			return nil
		default:
		}

		// BRPOP с таймаутом, чтобы периодически проверять ctx
		result, err := w.redisClient.BRPop(ctx, time.Second, queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop change event from Redis")
			select {
			case <-ctx.Done():
			case <-time.After(w.cfg.WebhookBaseDelay):
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event ChangeEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal change event from Redis")
			continue
		}

		if err := w.Deliver(ctx, event, []byte(payload)); err != nil {
			w.logger.WithError(err).WithFields(logrus.Fields{
				"resource": event.Resource,
				"action":   event.Action,
				"id":       event.ID,
			}).Error("Failed to deliver webhook")
		}
	}
}

// Deliver отправляет событие на WEBHOOK_URL. Пустой URL - событие отбрасывается.
func (w *Worker) Deliver(ctx context.Context, event ChangeEvent, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"resource": event.Resource,
		"action":   event.Action,
		"id":       event.ID,
	})

	if w.cfg.WebhookURL == "" {
		log.Debug("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	req := w.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.SetHeader(signatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := req.Post(w.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook delivery failed with status code %d after %d attempts", resp.StatusCode(), resp.Request.Attempt)
	}

	log.Info("Webhook delivered successfully.")
	return nil
}

// Sign генерирует HMAC-SHA256 подпись тела запроса
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
