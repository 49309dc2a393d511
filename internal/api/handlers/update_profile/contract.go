package update_profile

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
)

type ClientsService interface {
	UpdateProfile(ctx context.Context, identity clients.Identity, name, phone, plate string) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
