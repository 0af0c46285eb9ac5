package matching

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-engine/internal/shared/server/middleware"
	"resume-engine/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the matching service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches", middleware.BodyLimit(h.Svc.MaxBytes), h.match)
}

func (h *Handler) match(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.BodyTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "request body is too large", []map[string]string{
				{"field": "resumeText", "issue": respond.CodePayloadTooLarge},
			})
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", nil)
		return
	}

	resp, err := h.Svc.Run(c.Request.Context(), middleware.RequestIDFromContext(c), req)
	if err != nil {
		status, code, field := ErrorStatus(err)
		respond.Error(c, status, code, err.Error(), []map[string]string{
			{"field": field, "issue": code},
		})
		return
	}

	c.Set("matchScore", resp.Result.MatchScore)
	respond.OK(c, resp)
}

// ErrorStatus maps a validation error onto an HTTP status, error code and
// the request field at fault.
func ErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrTextTooLarge):
		return http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "resumeText"
	case errors.Is(err, ErrEmptyResume):
		return http.StatusBadRequest, respond.CodeValidation, "resumeText"
	case errors.Is(err, ErrInvalidTokens):
		return http.StatusBadRequest, respond.CodeValidation, "resumeTokens"
	case errors.Is(err, ErrEmptySkill), errors.Is(err, ErrInvalidImportance):
		return http.StatusBadRequest, respond.CodeValidation, "job.hardSkills"
	default:
		return http.StatusInternalServerError, respond.CodeInternal, ""
	}
}
