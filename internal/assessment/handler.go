package assessment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmingle-backend/internal/profile"
	"skillmingle-backend/internal/shared/server/middleware"
	"skillmingle-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches routes that need no authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessments/:skill", h.questions)
}

// RegisterRoutes attaches routes that require an authenticated user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments/submit", h.submit)
}

func (h *Handler) questions(c *gin.Context) {
	skill := c.Param("skill")
	c.Set("skill", skill)

	questions, err := h.Svc.Questions(skill)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "skill is required", nil)
		return
	}

	respond.OK(c, toQuestionSetResponse(skill, questions))
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("skill", req.Skill)

	outcome, err := h.Svc.Submit(c.Request.Context(), userID, req.Skill, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "skill is required", nil)
		case errors.Is(err, ErrAnswerCount):
			respond.Error(c, http.StatusBadRequest, "validation_error", "more answers than questions", nil)
		case errors.Is(err, profile.ErrNotFound):
			// Post-auth profile miss is a store inconsistency, not a client error.
			respond.Error(c, http.StatusInternalServerError, "internal_error", "profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record assessment", nil)
		}
		return
	}

	respond.OK(c, toSubmitResponse(outcome))
}
