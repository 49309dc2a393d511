package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrLoad возвращается при ошибке чтения списка клиентов из хранилища
	ErrLoad = errors.New("client.repository: failed to load clients")

	// ErrSave возвращается при ошибке записи списка клиентов в хранилище
	ErrSave = errors.New("client.repository: failed to save clients")

	// ErrDecode возвращается при ошибке декодирования сохраненных данных
	ErrDecode = errors.New("client.repository: failed to decode stored clients")
)
