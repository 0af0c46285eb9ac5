package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-engine/internal/shared/server/middleware"
	"resume-engine/internal/shared/server/respond"
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
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", middleware.BodyLimit(h.Svc.Limits.MaxBytes), h.analyze)
}

type analyzeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.BodyTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "request body is too large", []map[string]string{
				{"field": "text", "issue": respond.CodePayloadTooLarge},
			})
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", nil)
		return
	}

	env, err := h.Svc.Run(c.Request.Context(), middleware.RequestIDFromContext(c), req.Text, req.FileName)
	if err != nil {
		status, code, field := ErrorStatus(err)
		respond.Error(c, status, code, err.Error(), []map[string]string{
			{"field": field, "issue": code},
		})
		return
	}

	c.Set("analysisHash", env.Result.Consistency.Hash)
	respond.OK(c, env)
}

// ErrorStatus maps a validation error onto an HTTP status, error code and
// the request field at fault.
func ErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrTextTooLarge):
		return http.StatusRequestEntityTooLarge, respond.CodePayloadTooLarge, "text"
	case errors.Is(err, ErrEmptyText), errors.Is(err, ErrTextTooShort):
		return http.StatusBadRequest, respond.CodeValidation, "text"
	case errors.Is(err, ErrInvalidFileName):
		return http.StatusBadRequest, respond.CodeValidation, "fileName"
	default:
		return http.StatusInternalServerError, respond.CodeInternal, ""
	}
}
