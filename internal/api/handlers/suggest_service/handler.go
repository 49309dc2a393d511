package suggest_service

import (
	"net/http"
	"strings"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
)

type Handler struct {
	assistantService AssistantService
	logger           Logger
}

func NewHandler(assistantService AssistantService, logger Logger) *Handler {
	return &Handler{
		assistantService: assistantService,
		logger:           logger,
	}
}

// Handle POST /api/v1/assistant/suggest
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/suggest - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, "некорректное тело запроса")
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		handlers.RespondBadRequest(w, "опишите состояние автомобиля")
		return
	}

	suggestion := h.assistantService.Suggest(r.Context(), req.Input)

	handlers.RespondJSON(w, http.StatusOK, SuggestResponse{Suggestion: suggestion})
}
