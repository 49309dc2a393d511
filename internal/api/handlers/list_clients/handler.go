package list_clients

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
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

// Handle GET /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientsService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainClients(clients))
}
