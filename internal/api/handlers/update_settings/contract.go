package update_settings

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Save(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
