package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
)

// keyPrefix префикс ключей сессий в Redis
const keyPrefix = "booking:session:"

// Store хранилище сессий бронирования в Redis
// Сессии сериализуются в JSON и живут до истечения TTL
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStore создает Redis-хранилище сессий
func NewStore(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save сохраняет сессию и продлевает её TTL
func (s *Store) Save(ctx context.Context, session *domain.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: marshal session %s: %v", sessionstore.ErrInternal, session.ID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set session %s: %v", sessionstore.ErrInternal, session.ID, err)
	}

	return nil
}

// Get возвращает сессию по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, sessionstore.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get session %s: %v", sessionstore.ErrInternal, id, err)
	}

	var session domain.BookingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("%w: unmarshal session %s: %v", sessionstore.ErrInternal, id, err)
	}

	return &session, nil
}

// Delete удаляет сессию; отсутствие ключа ошибкой не считается
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: delete session %s: %v", sessionstore.ErrInternal, id, err)
	}
	return nil
}
