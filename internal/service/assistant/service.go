package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// Ответы-заглушки: сбой подсказчика никогда не доходит до пользователя
// как ошибка, вместо этого возвращается готовая фраза
const (
	msgOffline     = "Извините, я сейчас офлайн. Пожалуйста, выберите услугу из списка."
	msgUnavailable = "У меня проблемы с подключением. Пожалуйста, выберите услугу вручную."
	msgEmptyAnswer = "Я не совсем понял, но наш Стандарт Блеск всегда отличный выбор!"
)

// Service сервис рекомендаций по выбору услуги
// client может быть nil - тогда подсказчик работает в офлайн-режиме
type Service struct {
	client SuggestionClient
	logger Logger
}

// NewService создает новый экземпляр сервиса рекомендаций
func NewService(client SuggestionClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Suggest возвращает рекомендацию услуги по описанию состояния автомобиля
// Никогда не возвращает ошибку вызывающему: любой сбой деградирует
// до статической фразы
func (s *Service) Suggest(ctx context.Context, userInput string) string {
	if s.client == nil {
		s.logger.Warn("Suggest: client is not configured, responding offline")
		return msgOffline
	}

	answer, err := s.client.Generate(ctx, systemInstruction(), userInput)
	if err != nil {
		s.logger.Error("Suggest: generate failed: %v", err)
		return msgUnavailable
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return msgEmptyAnswer
	}

	return answer
}

// systemInstruction собирает системную инструкцию с каталогом услуг
func systemInstruction() string {
	var services strings.Builder
	for _, svc := range domain.Services {
		services.WriteString(fmt.Sprintf("- %s (%.0f₽): %s\n", svc.Name, svc.Price, svc.Description))
	}

	return fmt.Sprintf(`Ты "TurboBot", дружелюбный и знающий помощник автомойки TurboClean.
Твоя цель — порекомендовать лучшую услугу мойки на основе описания состояния автомобиля пользователя.

Наши услуги:
%s
Правила:
1. Отвечай кратко (менее 50 слов).
2. Будь энтузиастом, но профессионалом.
3. Конкретно называй услугу, которую рекомендуешь.
4. Если пользователь спрашивает о чем-то постороннем, вежливо верни его к теме мойки машин.
5. Отвечай на Русском языке.`, services.String())
}
