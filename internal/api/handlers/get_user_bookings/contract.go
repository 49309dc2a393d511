package get_user_bookings

import (
	"context"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/service/bookings/models"
	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, client *domain.Client) ([]*models.BookingResponse, error)
}

type ClientsService interface {
	GetOrRegister(ctx context.Context, identity clients.Identity) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
