package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crowd_alert_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, logger, cfg)
}

func TestProcessFanoutEvent_DeliversWithSignature(t *testing.T) {
	payload := `{"alert_id":"00000000-0000-0000-0000-000000000001","recipients":["user-1"]}`
	secret := "test-secret"

	var gotSignature atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature.Store(r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.processFanoutEvent(context.Background(), FanoutEvent{}, payload)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	require.NotNil(t, gotSignature.Load())
	assert.Equal(t, expected, gotSignature.Load().(string))
}

func TestProcessFanoutEvent_RetriesOnServerError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.processFanoutEvent(context.Background(), FanoutEvent{}, `{}`)

	assert.Equal(t, int32(2), attempts.Load())
}

func TestProcessFanoutEvent_SkipsWithoutURL(t *testing.T) {
	worker := newTestWorker(&config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Без настроенного URL доставка молча пропускается
	worker.processFanoutEvent(context.Background(), FanoutEvent{}, `{}`)
}
