package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
	"github.com/kazilop/CarCleanTGApp2/pkg/ptr"
)

// storageKey ключ записи со списком клиентов
const storageKey = "turboclean_clients"

// Repository репозиторий клиентов поверх key-value хранилища
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) load(ctx context.Context) ([]domain.Client, error) {
	raw, ok, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if !ok {
		return []domain.Client{}, nil
	}

	var clients []domain.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return clients, nil
}

func (r *Repository) save(ctx context.Context, clients []domain.Client) error {
	raw, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// GetAll возвращает всех клиентов в порядке регистрации
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	clients, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Client, len(clients))
	for i := range clients {
		result[i] = &clients[i]
	}
	return result, nil
}

// GetByTelegramID возвращает клиента по Telegram ID
func (r *Repository) GetByTelegramID(ctx context.Context, tgID int64) (*domain.Client, error) {
	clients, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if c := findByTelegramID(clients, tgID); c != nil {
		return c, nil
	}
	return nil, ErrClientNotFound
}

// GetByPhone возвращает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	clients, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if c := findByPhone(clients, phone); c != nil {
		return c, nil
	}
	return nil, ErrClientNotFound
}

// Upsert сохраняет клиента: обновляет существующую запись или добавляет новую
// Поиск сначала по Telegram ID, затем по телефону (Telegram ID приоритетнее).
// При обновлении поля сливаются, Visits и IsVIP существующей записи сохраняются.
// Возвращает запись после слияния.
func (r *Repository) Upsert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	clients, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := findIndex(clients, c)
	if idx == -1 {
		clients = append(clients, *c)
		if err := r.save(ctx, clients); err != nil {
			return nil, err
		}
		saved := clients[len(clients)-1]
		return &saved, nil
	}

	clients[idx].Merge(c)
	if err := r.save(ctx, clients); err != nil {
		return nil, err
	}
	saved := clients[idx]
	return &saved, nil
}

// IncrementVisits увеличивает счётчик визитов клиента на единицу
// Возвращает запись после инкремента
func (r *Repository) IncrementVisits(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	clients, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := findIndex(clients, c)
	if idx == -1 {
		return nil, ErrClientNotFound
	}

	clients[idx].Visits++
	if err := r.save(ctx, clients); err != nil {
		return nil, err
	}
	saved := clients[idx]
	return &saved, nil
}

// Seed записывает демонстрационных клиентов, если база ещё пуста
// Повторный вызов ничего не меняет
func (r *Repository) Seed(ctx context.Context) error {
	_, ok, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if ok {
		return nil
	}

	demo := []domain.Client{
		{TelegramID: ptr.Ptr(int64(12345)), Name: "Демо Пользователь", Phone: "555-0101", PlateNumber: "А777АА", Visits: 9, IsVIP: false},
		{Name: "Иван Иванов", Phone: "555-0102", PlateNumber: "В555ВВ", Visits: 2, IsVIP: true},
	}
	return r.save(ctx, demo)
}

func findIndex(clients []domain.Client, c *domain.Client) int {
	if c.TelegramID != nil {
		for i := range clients {
			if clients[i].TelegramID != nil && *clients[i].TelegramID == *c.TelegramID {
				return i
			}
		}
	}
	for i := range clients {
		if c.Phone != "" && clients[i].Phone == c.Phone {
			return i
		}
	}
	return -1
}

func findByTelegramID(clients []domain.Client, tgID int64) *domain.Client {
	for i := range clients {
		if clients[i].TelegramID != nil && *clients[i].TelegramID == tgID {
			return &clients[i]
		}
	}
	return nil
}

func findByPhone(clients []domain.Client, phone string) *domain.Client {
	if phone == "" {
		return nil
	}
	for i := range clients {
		if clients[i].Phone == phone {
			return &clients[i]
		}
	}
	return nil
}
