package kv

import "context"

// Store key-value хранилище JSON-сериализованных записей
// Три логические записи: список бронирований, список клиентов, настройки.
// Операции синхронные, без транзакций и версионирования схемы.
type Store interface {
	// Get возвращает значение по ключу
	// Второй результат false, если ключ отсутствует
	Get(ctx context.Context, key string) (string, bool, error)

	// Set записывает значение по ключу, затирая предыдущее
	Set(ctx context.Context, key, value string) error
}
