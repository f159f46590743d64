package memory

import (
	"context"
	"sync"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
)

// entry сессия с временем истечения
type entry struct {
	session   *domain.BookingSession
	expiresAt time.Time
}

// Store потокобезопасное in-memory хранилище сессий
// Используется в dev-окружении и тестах вместо Redis
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
}

// NewStore создает in-memory хранилище с указанным TTL сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}
}

// Save сохраняет сессию и продлевает её TTL
func (s *Store) Save(_ context.Context, session *domain.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = entry{
		session:   session.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get возвращает копию сессии по ID
func (s *Store) Get(_ context.Context, id string) (*domain.BookingSession, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, sessionstore.ErrSessionNotFound
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, sessionstore.ErrSessionNotFound
	}

	return e.session.Clone(), nil
}

// Delete удаляет сессию; отсутствие сессии ошибкой не считается
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
