package get_settings

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

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
