package get_available_slots

import (
	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

// computeSlots вычисляет свободные слоты на день
//
// Кандидаты перебираются в минутах от startHour*60 до endHour*60
// (исключительно) с шагом slotDuration; неполный последний шаг отбрасывается.
// Слот свободен, пока число активных бронирований с точно таким же временем
// меньше числа постов. Отмененные бронирования ёмкость не занимают.
//
// Чистая функция без побочных эффектов: повторный вызов с теми же входными
// данными даёт тот же результат, слоты не повторяются, порядок хронологический.
// При startHour >= endHour результат пуст, перенос через полночь не поддерживается.
func computeSlots(settings domain.Settings, bookings []*domain.Booking) []types.TimeString {
	duration := settings.SlotDurationMinutes
	if duration <= 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	posts := settings.PostsCount
	if posts <= 0 {
		posts = 1
	}

	startMinutes := settings.StartHour * 60
	endMinutes := settings.EndHour * 60

	slots := make([]types.TimeString, 0)
	for current := startMinutes; current < endMinutes; current += duration {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			break
		}

		if countBookingsAt(bookings, slot) < posts {
			slots = append(slots, slot)
		}
	}

	return slots
}

// countBookingsAt подсчитывает активные бронирования с точно совпадающим временем слота
func countBookingsAt(bookings []*domain.Booking, slot types.TimeString) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() && b.TimeSlot == slot {
			count++
		}
	}
	return count
}
