package assistant

import "context"

// SuggestionClient интерфейс клиента генерации рекомендаций
type SuggestionClient interface {
	Generate(ctx context.Context, systemInstruction, input string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
