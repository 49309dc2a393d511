package update_settings

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
)

type Handler struct {
	settingsService SettingsService
	logger          Logger
}

func NewHandler(settingsService SettingsService, logger Logger) *Handler {
	return &Handler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	saved, err := h.settingsService.Save(r.Context(), req.ToDomainSettings())
	if err != nil {
		h.logger.Error("PUT /admin/settings - Failed to save settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, saved)
}
