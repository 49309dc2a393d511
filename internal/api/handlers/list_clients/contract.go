package list_clients

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// ClientsService интерфейс сервиса клиентов
type ClientsService interface {
	List(ctx context.Context) ([]*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
