package clients

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetByTelegramID(ctx context.Context, tgID int64) (*domain.Client, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	Upsert(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
