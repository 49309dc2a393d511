package get_profile

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/api/middleware"
)

type Handler struct {
	clientsService ClientsService
	adminChecker   AdminChecker
	logger         Logger
}

func NewHandler(clientsService ClientsService, adminChecker AdminChecker, logger Logger) *Handler {
	return &Handler{
		clientsService: clientsService,
		adminChecker:   adminChecker,
		logger:         logger,
	}
}

// Handle GET /api/v1/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "пользователь не определен")
		return
	}

	client, err := h.clientsService.GetOrRegister(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /me/profile - Failed to resolve client tg=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	isAdmin, err := h.adminChecker.IsAuthorizedAdmin(r.Context(), identity.TelegramID)
	if err != nil {
		h.logger.Error("GET /me/profile - Failed to check admin access tg=%d: %v", identity.TelegramID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(client, isAdmin))
}
