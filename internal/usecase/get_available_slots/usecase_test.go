package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	bookingRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/booking"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
	settingsRepo "github.com/kazilop/CarCleanTGApp2/internal/infra/storage/settings"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *bookingRepo.Repository, *settingsRepo.Repository) {
	t.Helper()

	store := kv.NewMemoryStore()
	bookings := bookingRepo.NewRepository(store)
	settings := settingsRepo.NewRepository(store)

	return NewUseCase(bookings, settings, nopLogger{}), bookings, settings
}

func pendingBooking(id, date string, slot types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		ServiceID: "srv_1",
		Date:      date,
		TimeSlot:  slot,
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}
}

func TestExecute_EmptyDayWithDefaults(t *testing.T) {
	uc, _, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)

	// 12 часов по 30 минут - 24 слота
	assert.Len(t, resp.Slots, 24)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("20:30"), resp.Slots[len(resp.Slots)-1])
	assert.Equal(t, 2, resp.PostsCount)
	assert.Equal(t, "2026-09-01", resp.Date)
}

func TestExecute_SlotsAreOrderedAndUnique(t *testing.T) {
	uc, _, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)

	seen := make(map[types.TimeString]bool)
	for i, slot := range resp.Slots {
		assert.False(t, seen[slot], "duplicate slot %s", slot)
		seen[slot] = true

		if i > 0 {
			assert.True(t, resp.Slots[i-1].IsBefore(slot),
				"slots out of order: %s before %s", resp.Slots[i-1], slot)
		}
	}
}

func TestExecute_SlotDisappearsWhenPostsAreFull(t *testing.T) {
	uc, bookings, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))

	// Один пост занят - слот ещё отдаётся
	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_1", "2026-09-01", "10:00")))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))

	// Оба поста заняты - слот исчезает
	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_2", "2026-09-01", "10:00")))

	resp, err = uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Len(t, resp.Slots, 23)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	uc, bookings, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))

	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_1", "2026-09-01", "10:00")))
	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_2", "2026-09-01", "10:00")))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))

	// Отмена одного бронирования возвращает слот
	require.NoError(t, bookings.UpdateStatus(ctx, "bk_1", domain.StatusCancelled))

	resp, err = uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_ZeroPostsMeansSingleBay(t *testing.T) {
	uc, bookings, settings := newTestUseCase(t)
	ctx := context.Background()

	// Сохраненный нулевой postsCount работает как один пост:
	// одного активного бронирования достаточно, чтобы слот исчез
	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          0,
	}))
	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_1", "2026-09-01", "10:00")))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.PostsCount)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Len(t, resp.Slots, 23)
}

func TestExecute_OtherDateDoesNotAffectCapacity(t *testing.T) {
	uc, bookings, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          1,
	}))

	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_1", "2026-09-02", "10:00")))

	resp, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_Idempotent(t *testing.T) {
	uc, bookings, settings := newTestUseCase(t)
	ctx := context.Background()

	require.NoError(t, settings.Save(ctx, domain.Settings{
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))
	require.NoError(t, bookings.Create(ctx, pendingBooking("bk_1", "2026-09-01", "12:30")))

	first, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, &Request{Date: "2026-09-01"})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	for _, date := range []string{"", "01-09-2026", "2026/09/01", "not-a-date"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}

func TestComputeSlots_StartAfterEnd(t *testing.T) {
	slots := computeSlots(domain.Settings{
		StartHour:           21,
		EndHour:             9,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}, nil)

	assert.Empty(t, slots)
}

func TestComputeSlots_PartialLastSlotDropped(t *testing.T) {
	// 9:00-10:00 с шагом 45 минут: влезает только 09:00 и 09:45,
	// неполный шаг после 09:45 отбрасывается
	slots := computeSlots(domain.Settings{
		StartHour:           9,
		EndHour:             10,
		SlotDurationMinutes: 45,
		PostsCount:          1,
	}, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, slots)
}

func TestComputeSlots_GuardsAgainstBrokenSettings(t *testing.T) {
	// Нулевая длительность и нулевые посты заменяются безопасными значениями
	slots := computeSlots(domain.Settings{
		StartHour:           9,
		EndHour:             10,
		SlotDurationMinutes: 0,
		PostsCount:          0,
	}, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestComputeSlots_ExactTimeMatchOnly(t *testing.T) {
	// Ёмкость занимают только бронирования с точно совпадающим временем
	bookings := []*domain.Booking{
		{ID: "bk_1", TimeSlot: "10:15", Status: domain.StatusPending},
	}

	slots := computeSlots(domain.Settings{
		StartHour:           10,
		EndHour:             11,
		SlotDurationMinutes: 30,
		PostsCount:          1,
	}, bookings)

	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, slots)
}
