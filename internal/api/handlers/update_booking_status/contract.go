package update_booking_status

import "context"

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	UpdateStatus(ctx context.Context, id string, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
