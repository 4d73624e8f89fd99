package analyses

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, MessageInvalidInput, "")
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	result, err := h.Svc.Analyze(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, MessageInvalidInput, "")
		default:
			respond.Error(c, http.StatusInternalServerError, MessageFailed, err.Error())
		}
		return
	}

	middleware.SetLogField(c, "match_rate", result.MatchRate)
	respond.JSON(c, http.StatusOK, result)
}
