package get_profile

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
)

type ClientsService interface {
	GetOrRegister(ctx context.Context, identity clients.Identity) (*domain.Client, error)
}

type AdminChecker interface {
	IsAuthorizedAdmin(ctx context.Context, tgID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
