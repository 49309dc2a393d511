package get_user_bookings

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/api/middleware"
)

type Handler struct {
	bookingsService BookingsService
	clientsService  ClientsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, clientsService ClientsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		clientsService:  clientsService,
		logger:          logger,
	}
}

// Handle GET /api/v1/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "пользователь не определен")
		return
	}

	client, err := h.clientsService.GetOrRegister(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to resolve client tg=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	bookings, err := h.bookingsService.GetUserBookings(r.Context(), client)
	if err != nil {
		h.logger.Error("GET /me/bookings - Failed to fetch bookings tg=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, bookings)
}
