package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения свободных слотов на дату
// Вызывается повторно при каждой смене даты в превью, поэтому не имеет
// побочных эффектов и не кеширует ни настройки, ни бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем действующие настройки (каждый вызов, без кеша -
	// правки админа применяются без перезапуска)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Читаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные слоты
	slots := computeSlots(settings, bookings)

	uc.logger.Info("GetAvailableSlots: date=%s, active=%d, free=%d, posts=%d",
		req.Date, len(bookings), len(slots), settings.PostsCount)

	return &Response{
		Date:       req.Date,
		PostsCount: settings.PostsCount,
		Slots:      slots,
	}, nil
}
