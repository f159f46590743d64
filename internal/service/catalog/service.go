package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/integrations/catalogservice"
)

// Service отдает снимок каталога услуг и мастеров.
// Снимок загружается лениво при первом обращении; при недоступности
// каталога подставляются встроенные значения по умолчанию, чтобы
// процесс записи оставался работоспособным
type Service struct {
	client CatalogClient
	log    Logger

	mu            sync.RWMutex
	loaded        bool
	services      []domain.Service
	professionals []domain.Professional
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client CatalogClient, log Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// Services возвращает снимок списка услуг
func (s *Service) Services(ctx context.Context) []domain.Service {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// Professionals возвращает снимок списка мастеров
func (s *Service) Professionals(ctx context.Context) []domain.Professional {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

// Categories возвращает отсортированный список уникальных категорий услуг
func (s *Service) Categories(ctx context.Context) []string {
	services := s.Services(ctx)

	seen := make(map[string]struct{})
	var categories []string
	for _, svc := range services {
		if svc.Category == "" {
			continue
		}
		if _, ok := seen[svc.Category]; ok {
			continue
		}
		seen[svc.Category] = struct{}{}
		categories = append(categories, svc.Category)
	}

	sort.Strings(categories)
	return categories
}

// ServicesByCategory возвращает услуги указанной категории
func (s *Service) ServicesByCategory(ctx context.Context, category string) []domain.Service {
	services := s.Services(ctx)

	var out []domain.Service
	for _, svc := range services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// FindService ищет услугу по идентификатору
func (s *Service) FindService(ctx context.Context, id string) (*domain.Service, error) {
	services := s.Services(ctx)

	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// FindProfessional ищет мастера по идентификатору
func (s *Service) FindProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	professionals := s.Professionals(ctx)

	for i := range professionals {
		if professionals[i].ID == id {
			return &professionals[i], nil
		}
	}
	return nil, ErrProfessionalNotFound
}

func (s *Service) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}

	services, err := s.client.ListServices(ctx)
	if err != nil || len(services) == 0 {
		if err != nil {
			s.log.Warn("catalog: failed to load services, using defaults: %v", err)
		}
		s.services = defaultServices()
	} else {
		s.services = convertServices(services)
	}

	professionals, err := s.client.ListProfessionals(ctx)
	if err != nil || len(professionals) == 0 {
		if err != nil {
			s.log.Warn("catalog: failed to load professionals, using defaults: %v", err)
		}
		s.professionals = defaultProfessionals()
	} else {
		s.professionals = convertProfessionals(professionals)
	}

	s.loaded = true
	s.log.Info("catalog: snapshot loaded, services=%d professionals=%d", len(s.services), len(s.professionals))
}

func convertServices(in []catalogservice.Service) []domain.Service {
	out := make([]domain.Service, 0, len(in))
	for _, svc := range in {
		item := domain.Service{
			ID:          svc.ID,
			Name:        svc.Name,
			Price:       svc.Price,
			ImageURL:    svc.ImageURL,
			Description: svc.Description,
		}
		if svc.Category != nil {
			item.Category = *svc.Category
		}
		if svc.Duration != nil {
			item.Duration = *svc.Duration
		}
		out = append(out, item)
	}
	return out
}

func convertProfessionals(in []catalogservice.Professional) []domain.Professional {
	out := make([]domain.Professional, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Professional{
			ID:         p.ID,
			Name:       p.Name,
			Position:   p.Position,
			Department: p.Department,
			ImageURL:   p.ImageURL,
		})
	}
	return out
}
