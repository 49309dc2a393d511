package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// Service сервис настроек и проверки админского доступа
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает действующие настройки
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return settings, nil
}

// Save сохраняет настройки целиком
// Некорректные числовые значения приводятся к безопасным,
// сохранение никогда не отклоняется из-за них
func (s *Service) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	sanitized := settings.Sanitized()

	if err := s.settingsRepo.Save(ctx, sanitized); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Save: settings updated: hours=%d-%d, slot=%dm, posts=%d, admins=%d",
		sanitized.StartHour, sanitized.EndHour, sanitized.SlotDurationMinutes,
		sanitized.PostsCount, len(sanitized.AdditionalAdminIDs))
	return sanitized, nil
}

// IsAuthorizedAdmin проверяет админский доступ
// Доступ есть у вшитых супер-админов и у ID из редактируемого списка.
// Настройки перечитываются на каждый вызов, чтобы правки списка
// применялись без перезапуска.
func (s *Service) IsAuthorizedAdmin(ctx context.Context, tgID int64) (bool, error) {
	if domain.IsRootAdmin(tgID) {
		return true, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("IsAuthorizedAdmin: repository error: %v", err)
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return settings.IsAdditionalAdmin(tgID), nil
}

// ParseAdminIDs разбирает список админских ID из строки через запятую
// Нечисловые элементы молча отбрасываются
func ParseAdminIDs(raw string) []int64 {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
