package suggest_service

import "context"

// AssistantService интерфейс сервиса рекомендаций
type AssistantService interface {
	Suggest(ctx context.Context, userInput string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
