package create_booking

import (
	"time"

	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
	createBooking "github.com/kazilop/CarCleanTGApp2/internal/usecase/create_booking"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date"`     // "2024-06-01"
	TimeSlot    string `json:"timeSlot"` // "09:30"
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plateNumber"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	Status      string `json:"status"`
	IsFreeWash  bool   `json:"isFreeWash"`
	ClientPhone string `json:"clientPhone"`
	PlateNumber string `json:"plateNumber"`
	CreatedAt   string `json:"createdAt"`

	// Состояние лояльности после записи - для экрана подтверждения
	Visits          int     `json:"visits"`
	WashesRemaining int     `json:"washesRemaining"`
	ProgressPercent float64 `json:"progressPercent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(identity clients.Identity) (*createBooking.Request, error) {
	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	name := r.Name
	if name == "" {
		name = identity.DisplayName()
	}

	return &createBooking.Request{
		TelegramID:  &identity.TelegramID,
		Username:    identity.Username,
		ServiceID:   r.ServiceID,
		Date:        r.Date,
		TimeSlot:    timeSlot,
		Name:        name,
		Phone:       r.Phone,
		PlateNumber: r.PlateNumber,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.Booking.ID,
		ServiceID:   resp.Booking.ServiceID,
		Date:        resp.Booking.Date,
		TimeSlot:    resp.Booking.TimeSlot.String(),
		Status:      string(resp.Booking.Status),
		IsFreeWash:  resp.Booking.IsFreeWash,
		ClientPhone: resp.Booking.ClientPhone,
		PlateNumber: resp.Booking.PlateNumber,
		CreatedAt:   resp.Booking.CreatedAt.Format(time.RFC3339),

		Visits:          resp.Client.Visits,
		WashesRemaining: resp.Loyalty.Remaining,
		ProgressPercent: resp.Loyalty.ProgressPercent,
	}
}
