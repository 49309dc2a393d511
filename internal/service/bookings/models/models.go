package models

import (
	"time"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// BookingResponse бронирование с разрешенной из каталога услугой
type BookingResponse struct {
	ID          string  `json:"id"`
	TelegramID  *int64  `json:"tgId,omitempty"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	ClientPhone string  `json:"clientPhone"`
	PlateNumber string  `json:"plateNumber"`
	Status      string  `json:"status"`
	IsFreeWash  bool    `json:"isFreeWash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
// Услуга разрешается из статического каталога; бронирование с неизвестным
// ServiceID остаётся видимым с пустой ценой
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:          b.ID,
		TelegramID:  b.TelegramID,
		ServiceID:   b.ServiceID,
		ServiceName: "Неизвестная услуга",
		Date:        b.Date,
		TimeSlot:    b.TimeSlot.String(),
		ClientPhone: b.ClientPhone,
		PlateNumber: b.PlateNumber,
		Status:      string(b.Status),
		IsFreeWash:  b.IsFreeWash,
		CreatedAt:   b.CreatedAt,
	}

	if service := domain.ServiceByID(b.ServiceID); service != nil {
		resp.ServiceName = service.Name
		resp.Price = service.Price
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return result
}

// StatsResponse сводка по бронированиям для админского дашборда
type StatsResponse struct {
	// Revenue выручка: сумма цен завершенных небесплатных моек
	Revenue float64 `json:"revenue"`

	PendingCount   int `json:"pendingCount"`
	CompletedCount int `json:"completedCount"`
	CancelledCount int `json:"cancelledCount"`
}
