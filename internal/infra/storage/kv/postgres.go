package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kazilop/CarCleanTGApp2/pkg/psqlbuilder"
)

// PostgresStore key-value хранилище поверх единственной таблицы kv_records
// Альтернативный backend для окружений без Redis
//
// Ожидаемая схема:
//
//	CREATE TABLE kv_records (
//	    key        TEXT PRIMARY KEY,
//	    value      TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore создает хранилище поверх подключения к PostgreSQL
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get читает значение по ключу
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From("kv_records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: build select for %s: %v", ErrGet, key, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: select %s: %v", ErrGet, key, err)
	}

	return value, true, nil
}

// Set записывает значение по ключу (upsert)
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert("kv_records").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert for %s: %v", ErrSet, key, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert %s: %v", ErrSet, key, err)
	}

	return nil
}
