package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrLoad возвращается при ошибке чтения списка бронирований из хранилища
	ErrLoad = errors.New("booking.repository: failed to load bookings")

	// ErrSave возвращается при ошибке записи списка бронирований в хранилище
	ErrSave = errors.New("booking.repository: failed to save bookings")

	// ErrDecode возвращается при ошибке декодирования сохраненных данных
	ErrDecode = errors.New("booking.repository: failed to decode stored bookings")
)
