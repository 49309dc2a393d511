package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrTerminalStatus возвращается при попытке изменить завершенное
	// или отмененное бронирование
	ErrTerminalStatus = errors.New("bookings.service: booking is in terminal status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
