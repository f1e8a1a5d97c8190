package skills

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmingle-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches skill catalog routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.list)
	rg.POST("/skills/seed", h.seed)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list skills", nil)
		return
	}
	if list == nil {
		list = []Skill{}
	}
	respond.OK(c, list)
}

func (h *Handler) seed(c *gin.Context) {
	if err := h.Svc.Seed(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to seed skills", nil)
		return
	}
	respond.OK(c, gin.H{"message": "skills seeded"})
}
