package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"essaylens/internal/detect"
	"essaylens/internal/tokenize"
)

// Handler owns the detection engine behind the API routes.
type Handler struct {
	engine *detect.Engine
	log    *zap.Logger
}

func NewHandler(engine *detect.Engine, log *zap.Logger) *Handler {
	return &Handler{engine: engine, log: log}
}

type detectRequest struct {
	Text string `json:"text" binding:"required"`
}

// detectResponse flattens the result next to its analysis id.
type detectResponse struct {
	AnalysisID string `json:"analysisId"`
	*detect.Result
}

// Detect scores the submitted text.
// POST /api/v1/detect
func (h *Handler) Detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			Error(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		BadRequestWithValidation(c, err)
		return
	}

	result, err := h.engine.Detect(req.Text)
	if err != nil {
		var invalid *tokenize.InvalidInputError
		if errors.As(err, &invalid) {
			BadRequest(c, invalid.Error())
			return
		}
		h.log.Error("detection failed",
			zap.Error(err),
			zap.String("requestId", requestID(c)))
		InternalError(c, "analysis failed")
		return
	}

	Success(c, detectResponse{AnalysisID: uuid.NewString(), Result: result})
}

// Health reports liveness.
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
