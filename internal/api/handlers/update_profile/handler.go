package update_profile

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/api/middleware"
)

type Handler struct {
	clientsService ClientsService
	logger         Logger
}

func NewHandler(clientsService ClientsService, logger Logger) *Handler {
	return &Handler{
		clientsService: clientsService,
		logger:         logger,
	}
}

// Handle PUT /api/v1/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "пользователь не определен")
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	client, err := h.clientsService.UpdateProfile(r.Context(), identity, req.Name, req.Phone, req.PlateNumber)
	if err != nil {
		h.logger.Error("PUT /me/profile - Failed to update profile tg=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /me/profile - Updated profile tg=%d", identity.TelegramID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(client))
}
