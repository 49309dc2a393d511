package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/service/bookings"
)

type Handler struct {
	bookingsService BookingsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		logger:          logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, "не указан идентификатор бронирования")
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/%s/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	if err := h.bookingsService.UpdateStatus(r.Context(), bookingID, req.Status); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, "недопустимый статус бронирования")
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, "бронирование не найдено")
		case errors.Is(err, bookings.ErrTerminalStatus):
			handlers.RespondError(w, http.StatusConflict, "бронирование уже завершено или отменено")
		default:
			h.logger.Error("PATCH /admin/bookings/%s/status - Failed to update: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{ID: bookingID, Status: req.Status})
}
