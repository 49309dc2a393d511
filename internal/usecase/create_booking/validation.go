package create_booking

import (
	"fmt"
	"time"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	// Клиент должен быть идентифицируем: по Telegram ID или по телефону
	if req.TelegramID == nil && req.Phone == "" {
		return fmt.Errorf("%w: client identity is required (telegram id or phone)", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.Date)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidTimeSlot)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	return nil
}
