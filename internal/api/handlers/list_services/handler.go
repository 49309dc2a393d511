package list_services

import (
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/domain"
)

// Handler отдает статический каталог услуг
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, domain.Services)
}
