package assistant

import "errors"

var (
	// ErrMissingAPIKey возвращается при отсутствующем ключе API
	ErrMissingAPIKey = errors.New("assistant.client: api key is missing")

	// ErrInit возвращается при сбое инициализации клиента
	ErrInit = errors.New("assistant.client: failed to initialize client")

	// ErrGenerate возвращается при сбое запроса к модели
	ErrGenerate = errors.New("assistant.client: generate request failed")
)
