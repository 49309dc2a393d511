package get_settings

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
