package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
)

// storageKey ключ записи с настройками
const storageKey = "turboclean_settings"

// Repository репозиторий настроек поверх key-value хранилища
// Настройки хранятся единственной JSON-записью; чтение накладывает
// сохраненную частичную запись поверх дефолтов, запись затирает целиком
type Repository struct {
	store    kv.Store
	defaults domain.Settings
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(store kv.Store) *Repository {
	return &Repository{
		store:    store,
		defaults: domain.DefaultSettings(),
	}
}

// Get возвращает действующие настройки
// Отсутствующая или нечитаемая запись даёт дефолты: некорректная
// конфигурация чинится, а не отклоняется
func (r *Repository) Get(ctx context.Context) (domain.Settings, error) {
	raw, ok, err := r.store.Get(ctx, storageKey)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if !ok {
		return r.defaults.Sanitized(), nil
	}

	var stored domain.StoredSettings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		// Битая запись трактуется как отсутствующая
		return r.defaults.Sanitized(), nil
	}

	return domain.MergeSettings(r.defaults, &stored), nil
}

// Save записывает настройки целиком, затирая предыдущую запись
func (r *Repository) Save(ctx context.Context, s domain.Settings) error {
	raw, err := json.Marshal(s.Sanitized())
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSave, err)
	}
	if err := r.store.Set(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}
