package kv

import "errors"

var (
	// ErrGet возвращается при ошибке чтения из хранилища
	ErrGet = errors.New("kv: failed to get value")

	// ErrSet возвращается при ошибке записи в хранилище
	ErrSet = errors.New("kv: failed to set value")
)
