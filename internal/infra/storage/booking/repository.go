package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
)

// storageKey ключ записи со списком бронирований
const storageKey = "turboclean_bookings"

// Repository репозиторий бронирований поверх key-value хранилища
// Весь список лежит одной JSON-записью; каждая операция читает список
// целиком, меняет его в памяти и пишет обратно
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) load(ctx context.Context) ([]domain.Booking, error) {
	raw, ok, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if !ok {
		return []domain.Booking{}, nil
	}

	var bookings []domain.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return bookings, nil
}

func (r *Repository) save(ctx context.Context, bookings []domain.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// Create добавляет новое бронирование в конец списка
func (r *Repository) Create(ctx context.Context, b *domain.Booking) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	bookings = append(bookings, *b)
	return r.save(ctx, bookings)
}

// GetAll возвращает все бронирования, новые первыми
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := toPointers(bookings)
	sortNewestFirst(result)
	return result, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

// GetActiveByDate возвращает бронирования на дату, занимающие слоты
// Отмененные бронирования не учитываются в ёмкости и не возвращаются
func (r *Repository) GetActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for i := range bookings {
		if bookings[i].Date == date && bookings[i].IsActive() {
			result = append(result, &bookings[i])
		}
	}
	return result, nil
}

// GetByClient возвращает историю бронирований клиента, новые первыми
// Сопоставление по Telegram ID, при его отсутствии по телефону
func (r *Repository) GetByClient(ctx context.Context, client *domain.Client) ([]*domain.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for i := range bookings {
		if bookings[i].MatchesClient(client) {
			result = append(result, &bookings[i])
		}
	}

	sortNewestFirst(result)
	return result, nil
}

// UpdateStatus меняет статус бронирования
// Возвращает ErrBookingNotFound, если бронирование с таким ID отсутствует
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			return r.save(ctx, bookings)
		}
	}
	return ErrBookingNotFound
}

func toPointers(bookings []domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		result[i] = &bookings[i]
	}
	return result
}

func sortNewestFirst(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
