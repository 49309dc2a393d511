package domain

import (
	"time"

	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusCompleted,
	StatusCancelled,
}

// IsValid проверяет, что статус входит в список допустимых
func (s BookingStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Booking represents a wash booking in the system
type Booking struct {
	ID         string           `json:"id"`
	TelegramID *int64           `json:"tgId,omitempty"`
	ServiceID  string           `json:"serviceId"`
	Date       string           `json:"date"` // YYYY-MM-DD
	TimeSlot   types.TimeString `json:"timeSlot"`

	// Snapshot of client contact data at booking time
	ClientPhone string `json:"clientPhone"`
	PlateNumber string `json:"plateNumber"`

	Status BookingStatus `json:"status"`

	// IsFreeWash фиксируется один раз при создании по счётчику визитов
	// клиента до инкремента и больше не пересчитывается
	IsFreeWash bool `json:"isFreeWash"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsActive returns true while the booking still occupies its slot.
// Cancelled bookings do not count against post capacity.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsPending returns true if the booking awaits administrative action
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsTerminal returns true for completed and cancelled bookings
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// MatchesClient проверяет, принадлежит ли бронирование клиенту
// Сначала сверяет Telegram ID, при его отсутствии - телефон.
// Если Telegram ID есть у обеих сторон, но не совпадает, телефон уже не
// проверяется: бронирование другого аккаунта с тем же телефоном намеренно
// не попадает в чужую историю
func (b *Booking) MatchesClient(c *Client) bool {
	if c == nil {
		return false
	}
	if c.TelegramID != nil && b.TelegramID != nil {
		return *b.TelegramID == *c.TelegramID
	}
	return b.ClientPhone != "" && b.ClientPhone == c.Phone
}
