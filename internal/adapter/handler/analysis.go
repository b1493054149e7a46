package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetinglens/meetinglens/errors"
	dto "github.com/meetinglens/meetinglens/internal/adapter/dto/analysis"
	"github.com/meetinglens/meetinglens/internal/usecase/analysis"
)

// AnalysisHandler serves the transcript analysis endpoint
type AnalysisHandler struct {
	svc    analysis.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, logger: logger}
}

// Analyze runs the analysis pipeline over a meeting transcript
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript exceeds the maximum accepted size"))
	}

	report := h.runPipeline(c.Request().Context(), req.Text)

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("chunks_processed", report.NumberOfChunksProcessed),
		)
	}

	return c.JSON(http.StatusOK, report)
}

// runPipeline invokes the orchestrator and absorbs anything that escapes it.
// Each pipeline component already contains its own failures, so only a
// defect can surface here; it degrades to the all-empty report with a zero
// chunk count rather than a transport error.
func (h *AnalysisHandler) runPipeline(ctx context.Context, text string) (report dto.AnalyzeResponse) {
	defer func() {
		if p := recover(); p != nil {
			if h.logger != nil {
				h.logger.Error("analysis pipeline panicked",
					zap.Any("panic", p),
				)
			}
			report = dto.EmptyResponse()
		}
	}()

	return dto.FromReport(h.svc.AnalyzeMeeting(ctx, text))
}
