package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// UseCase use case создания бронирования
//
// Последовательность записей не обёрнута ни в блокировку, ни в транзакцию:
// хранилище - локальное key-value без арбитража. Проверка ёмкости слота
// выполняется отдельным превью (get_available_slots) и здесь не повторяется;
// гонка между превью и подтверждением принята осознанно - побеждает
// последняя запись, ёмкость слота может быть кратковременно превышена.
// При сбое хранилища на любом шаге операция завершается ошибкой целиком,
// уже выполненные записи не откатываются.
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &uuidGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tg=%v, service=%s, date=%s, time=%s",
		req.TelegramID, req.ServiceID, req.Date, req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга берётся из статического каталога
	service := domain.ServiceByID(req.ServiceID)
	if service == nil {
		uc.logger.Warn("CreateBooking: service %s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Сливаем контактные правки в профиль клиента и сохраняем
	// (поиск по Telegram ID, затем по телефону; Visits и IsVIP сохраняются)
	client, err := uc.clientRepo.Upsert(ctx, &domain.Client{
		TelegramID:  req.TelegramID,
		Username:    req.Username,
		Name:        req.Name,
		Phone:       req.Phone,
		PlateNumber: req.PlateNumber,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to upsert client: %v", err)
		return nil, fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
	}

	// 4. Бесплатность мойки фиксируется по счётчику визитов ДО инкремента
	// и замораживается в бронировании навсегда
	isFreeWash := domain.Loyalty(client.Visits, domain.LoyaltyThreshold).FreeOnNextVisit

	// 5. Создаем бронирование
	booking := &domain.Booking{
		ID:          uc.idGenerator.NewID(),
		TelegramID:  client.TelegramID,
		ServiceID:   service.ID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		ClientPhone: client.Phone,
		PlateNumber: client.PlateNumber,
		Status:      domain.StatusPending,
		IsFreeWash:  isFreeWash,
		CreatedAt:   uc.timeProvider.Now(),
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 6. Инкрементируем счётчик визитов
	updated, err := uc.clientRepo.IncrementVisits(ctx, client)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to increment visits: %v", err)
		return nil, fmt.Errorf("%w: failed to increment visits: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, free=%t, client visits=%d",
		booking.ID, booking.IsFreeWash, updated.Visits)

	return &Response{
		Booking: booking,
		Client:  updated,
		Loyalty: domain.Loyalty(updated.Visits, domain.LoyaltyThreshold),
	}, nil
}

// uuidGenerator генератор ID бронирований на основе UUID
type uuidGenerator struct{}

// NewID возвращает новый уникальный ID бронирования
func (g *uuidGenerator) NewID() string {
	return "bk_" + uuid.NewString()
}
