package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	fanoutQueueKey = "alert_fanout_events"
)

// FanoutEvent - событие рассылки уведомлений по тревоге. Ставится в очередь
// только после успешной фиксации состояния тревоги в бд.
type FanoutEvent struct {
	AlertID        uuid.UUID `json:"alert_id"`
	Title          string    `json:"title"`
	SeverityScore  int       `json:"severity_score"`
	SeverityLevel  string    `json:"severity_level"`
	EscalationEdge int       `json:"escalation_edge,omitempty"` // 0 для первичной рассылки при создании
	RadiusKm       float64   `json:"radius_km"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Recipients     []string  `json:"recipients"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий рассылки
type Publisher interface {
	Publish(ctx context.Context, event FanoutEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие рассылки в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event FanoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fanout event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, fanoutQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish fanout event to Redis: %w", err)
	}
	return nil
}
