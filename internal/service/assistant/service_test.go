package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubClient struct {
	answer string
	err    error
}

func (c stubClient) Generate(_ context.Context, _, _ string) (string, error) {
	return c.answer, c.err
}

func TestService_Suggest_OfflineWithoutClient(t *testing.T) {
	svc := NewService(nil, nopLogger{})

	got := svc.Suggest(context.Background(), "машина грязная")
	assert.Equal(t, msgOffline, got)
}

func TestService_Suggest_DegradesOnGenerateError(t *testing.T) {
	svc := NewService(stubClient{err: errors.New("quota exceeded")}, nopLogger{})

	got := svc.Suggest(context.Background(), "машина грязная")
	assert.Equal(t, msgUnavailable, got)
}

func TestService_Suggest_FallbackOnEmptyAnswer(t *testing.T) {
	svc := NewService(stubClient{answer: "   \n"}, nopLogger{})

	got := svc.Suggest(context.Background(), "машина грязная")
	assert.Equal(t, msgEmptyAnswer, got)
}

func TestService_Suggest_ReturnsTrimmedAnswer(t *testing.T) {
	svc := NewService(stubClient{answer: "  Рекомендую Премиум Детейлинг!  "}, nopLogger{})

	got := svc.Suggest(context.Background(), "давно не мыл машину")
	assert.Equal(t, "Рекомендую Премиум Детейлинг!", got)
}

func TestSystemInstruction_ContainsCatalog(t *testing.T) {
	instruction := systemInstruction()

	assert.True(t, strings.Contains(instruction, "TurboBot"))
	assert.True(t, strings.Contains(instruction, "Экспресс Мойка"))
	assert.True(t, strings.Contains(instruction, "Керамическая Защита"))
}
