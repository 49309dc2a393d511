package create_booking

import (
	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TelegramID *int64           // Telegram ID клиента (может отсутствовать)
	Username   *string          // Telegram username (опционально)
	ServiceID  string           // ID услуги из каталога
	Date       string           // Дата бронирования YYYY-MM-DD
	TimeSlot   types.TimeString // Время слота, например "09:30"

	// Контактные данные, введенные при оформлении
	// Накладываются на профиль клиента при записи
	Name        string
	Phone       string
	PlateNumber string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking // Созданное бронирование

	// Состояние клиента после инкремента счётчика визитов
	Client  *domain.Client
	Loyalty domain.LoyaltyState
}
