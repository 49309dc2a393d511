package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
	"github.com/kazilop/CarCleanTGApp2/pkg/ptr"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

func newBooking(id string, tgID int64, date string, slot types.TimeString, status domain.BookingStatus, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		TelegramID:  ptr.Ptr(tgID),
		ServiceID:   "srv_1",
		Date:        date,
		TimeSlot:    slot,
		ClientPhone: "555-0101",
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	b := newBooking("bk_1", 100, "2026-09-01", "10:00", domain.StatusPending, time.Now())
	require.NoError(t, repo.Create(ctx, b))

	saved, err := repo.GetByID(ctx, "bk_1")
	require.NoError(t, err)
	assert.Equal(t, "bk_1", saved.ID)
	assert.Equal(t, types.TimeString("10:00"), saved.TimeSlot)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())

	_, err := repo.GetByID(context.Background(), "bk_missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetAll_NewestFirst(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newBooking("bk_old", 100, "2026-09-01", "10:00", domain.StatusPending, base)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_new", 100, "2026-09-01", "11:00", domain.StatusPending, base.Add(time.Hour))))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "bk_new", all[0].ID)
	assert.Equal(t, "bk_old", all[1].ID)
}

func TestRepository_GetActiveByDate(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, newBooking("bk_1", 100, "2026-09-01", "10:00", domain.StatusPending, now)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_2", 100, "2026-09-01", "10:00", domain.StatusCompleted, now)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_3", 100, "2026-09-01", "10:00", domain.StatusCancelled, now)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_4", 100, "2026-09-02", "10:00", domain.StatusPending, now)))

	active, err := repo.GetActiveByDate(ctx, "2026-09-01")
	require.NoError(t, err)

	// Отмененное и чужая дата не попадают, завершенное занимает слот
	require.Len(t, active, 2)
	ids := []string{active[0].ID, active[1].ID}
	assert.ElementsMatch(t, []string{"bk_1", "bk_2"}, ids)
}

func TestRepository_GetByClient(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newBooking("bk_1", 100, "2026-09-01", "10:00", domain.StatusPending, base)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_2", 200, "2026-09-01", "11:00", domain.StatusPending, base)))
	require.NoError(t, repo.Create(ctx, newBooking("bk_3", 100, "2026-09-02", "12:00", domain.StatusCancelled, base.Add(time.Hour))))

	history, err := repo.GetByClient(ctx, &domain.Client{TelegramID: ptr.Ptr(int64(100))})
	require.NoError(t, err)

	// Вся история клиента, включая отмененные, новые первыми
	require.Len(t, history, 2)
	assert.Equal(t, "bk_3", history[0].ID)
	assert.Equal(t, "bk_1", history[1].ID)
}

func TestRepository_GetByClient_ByPhoneFallback(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	anonymous := &domain.Booking{
		ID:          "bk_1",
		ServiceID:   "srv_1",
		Date:        "2026-09-01",
		TimeSlot:    "10:00",
		ClientPhone: "555-0777",
		Status:      domain.StatusPending,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, anonymous))

	history, err := repo.GetByClient(ctx, &domain.Client{Phone: "555-0777"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "bk_1", history[0].ID)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("bk_1", 100, "2026-09-01", "10:00", domain.StatusPending, time.Now())))

	require.NoError(t, repo.UpdateStatus(ctx, "bk_1", domain.StatusCompleted))

	saved, err := repo.GetByID(ctx, "bk_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, saved.Status)
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())

	err := repo.UpdateStatus(context.Background(), "bk_missing", domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_EmptyStore(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	active, err := repo.GetActiveByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, active)
}
