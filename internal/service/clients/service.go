package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	clientRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/client"
)

// Identity данные пользователя, переданные платформой при старте mini-app
type Identity struct {
	TelegramID int64
	Username   *string
	FirstName  string
	LastName   string
}

// DisplayName собирает отображаемое имя из имени и фамилии
func (i Identity) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Service сервис для работы с профилями клиентов
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// GetOrRegister возвращает профиль клиента по платформенной идентичности,
// регистрируя нового клиента при первом появлении
// Телефон и номер машины у нового клиента пустые, их заполняет профиль
func (s *Service) GetOrRegister(ctx context.Context, identity Identity) (*domain.Client, error) {
	client, err := s.clientRepo.GetByTelegramID(ctx, identity.TelegramID)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("GetOrRegister: repository error for tg=%d: %v", identity.TelegramID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	created, err := s.clientRepo.Upsert(ctx, &domain.Client{
		TelegramID: &identity.TelegramID,
		Username:   identity.Username,
		Name:       identity.DisplayName(),
	})
	if err != nil {
		s.logger.Error("GetOrRegister: failed to register tg=%d: %v", identity.TelegramID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrRegister: registered new client tg=%d", identity.TelegramID)
	return created, nil
}

// UpdateProfile обновляет контактные данные клиента
// Счётчик визитов и VIP-флаг правкой профиля не затрагиваются
func (s *Service) UpdateProfile(ctx context.Context, identity Identity, name, phone, plate string) (*domain.Client, error) {
	updated, err := s.clientRepo.Upsert(ctx, &domain.Client{
		TelegramID:  &identity.TelegramID,
		Username:    identity.Username,
		Name:        name,
		Phone:       phone,
		PlateNumber: plate,
	})
	if err != nil {
		s.logger.Error("UpdateProfile: failed to update tg=%d: %v", identity.TelegramID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: updated client tg=%d", identity.TelegramID)
	return updated, nil
}

// List возвращает базу клиентов для админской выдачи
func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return clients, nil
}
