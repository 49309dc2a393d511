package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	bookingRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/booking"
	"github.com/kazilop/CarCleanTGApp2/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetUserBookings возвращает историю бронирований клиента, новые первыми
// Сопоставление по Telegram ID, при его отсутствии по телефону
func (s *Service) GetUserBookings(ctx context.Context, client *domain.Client) ([]*models.BookingResponse, error) {
	bookings, err := s.bookingRepo.GetByClient(ctx, client)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListAll возвращает все бронирования, новые первыми
// Используется админской выдачей, которая перечитывает список по таймеру
func (s *Service) ListAll(ctx context.Context) ([]*models.BookingResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус
//
// Допустимые переходы: pending -> completed, pending -> cancelled.
// Завершенные и отмененные бронирования неизменяемы. После отмены слот
// бронирования перестаёт учитываться в ёмкости своей даты и времени.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	newStatus := domain.BookingStatus(status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status %q for booking %s", status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking %s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking %s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if current.IsTerminal() {
		s.logger.Warn("UpdateStatus: booking %s already %s", id, current.Status)
		return fmt.Errorf("%w: %s", ErrTerminalStatus, current.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking %s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking %s -> %s", id, newStatus)
	return nil
}

// Stats возвращает сводку для админского дашборда
// Выручка считается только по завершенным небесплатным мойкам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	stats := &models.StatsResponse{}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			stats.PendingCount++
		case domain.StatusCompleted:
			stats.CompletedCount++
			if !b.IsFreeWash {
				if service := domain.ServiceByID(b.ServiceID); service != nil {
					stats.Revenue += service.Price
				}
			}
		case domain.StatusCancelled:
			stats.CancelledCount++
		}
	}

	return stats, nil
}
