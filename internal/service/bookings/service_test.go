package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	bookingRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/booking"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
	"github.com/kazilop/CarCleanTGApp2/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *bookingRepo.Repository) {
	t.Helper()

	repo := bookingRepo.NewRepository(kv.NewMemoryStore())
	return NewService(repo, nopLogger{}), repo
}

func seedBooking(t *testing.T, repo *bookingRepo.Repository, id, serviceID string, status domain.BookingStatus, free bool) {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), &domain.Booking{
		ID:         id,
		TelegramID: ptr.Ptr(int64(100)),
		ServiceID:  serviceID,
		Date:       "2026-09-01",
		TimeSlot:   "10:00",
		Status:     status,
		IsFreeWash: free,
		CreatedAt:  time.Now(),
	}))
}

func TestService_UpdateStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	seedBooking(t, repo, "bk_1", "srv_1", domain.StatusPending, false)

	require.NoError(t, svc.UpdateStatus(ctx, "bk_1", "completed"))

	saved, err := repo.GetByID(ctx, "bk_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, saved.Status)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, repo := newTestService(t)

	seedBooking(t, repo, "bk_1", "srv_1", domain.StatusPending, false)

	err := svc.UpdateStatus(context.Background(), "bk_1", "confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateStatus(context.Background(), "bk_missing", "completed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatus_TerminalStatusesAreImmutable(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	seedBooking(t, repo, "bk_done", "srv_1", domain.StatusCompleted, false)
	seedBooking(t, repo, "bk_gone", "srv_1", domain.StatusCancelled, false)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, "bk_done", "cancelled"), ErrTerminalStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "bk_gone", "pending"), ErrTerminalStatus)

	// Статусы не изменились
	done, err := repo.GetByID(ctx, "bk_done")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)
}

func TestService_GetUserBookings_ResolvesCatalog(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	seedBooking(t, repo, "bk_1", "srv_2", domain.StatusPending, false)
	seedBooking(t, repo, "bk_2", "srv_unknown", domain.StatusPending, false)

	list, err := svc.GetUserBookings(ctx, &domain.Client{TelegramID: ptr.Ptr(int64(100))})
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := map[string]string{}
	for _, b := range list {
		byID[b.ID] = b.ServiceName
	}
	assert.Equal(t, "Стандарт Блеск", byID["bk_1"])

	// Бронирование с неизвестной услугой остаётся видимым
	assert.Equal(t, "Неизвестная услуга", byID["bk_2"])
}

func TestService_Stats(t *testing.T) {
	svc, repo := newTestService(t)

	seedBooking(t, repo, "bk_1", "srv_1", domain.StatusCompleted, false) // 500
	seedBooking(t, repo, "bk_2", "srv_2", domain.StatusCompleted, false) // 1200
	seedBooking(t, repo, "bk_3", "srv_3", domain.StatusCompleted, true)  // бесплатная, не в выручке
	seedBooking(t, repo, "bk_4", "srv_4", domain.StatusPending, false)   // не завершена
	seedBooking(t, repo, "bk_5", "srv_1", domain.StatusCancelled, false)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(1700), stats.Revenue)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 3, stats.CompletedCount)
	assert.Equal(t, 1, stats.CancelledCount)
}

func TestService_Stats_EmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.PendingCount)
	assert.Zero(t, stats.CompletedCount)
	assert.Zero(t, stats.CancelledCount)
}
