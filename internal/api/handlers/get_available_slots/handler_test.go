package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/kazilop/CarCleanTGApp2/internal/usecase/get_available_slots"
	"github.com/kazilop/CarCleanTGApp2/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s stubUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return s.resp, s.err
}

func TestHandle_OK(t *testing.T) {
	h := NewHandler(stubUseCase{resp: &getAvailableSlots.Response{
		Date:       "2026-09-01",
		PostsCount: 2,
		Slots:      []types.TimeString{"09:00", "09:30"},
	}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, 2, resp.PostsCount)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(stubUseCase{err: getAvailableSlots.ErrInvalidDate}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=bad", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(stubUseCase{err: errors.New("storage down")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
