package optimize

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/respond"
)

// Handler serves POST /optimize.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the optimize route.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/optimize", h.optimize)
}

func (h *Handler) optimize(c *gin.Context) {
	var req Request
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, MessageInvalidInput, "")
		return
	}

	resp, err := h.Svc.Optimize(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, MessageInvalidInput, "")
		default:
			respond.Error(c, http.StatusInternalServerError, MessageFailed, err.Error())
		}
		return
	}
	respond.JSON(c, http.StatusOK, resp)
}
