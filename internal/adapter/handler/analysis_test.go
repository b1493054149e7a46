package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/meetinglens/meetinglens/internal/adapter/dto/analysis"
	"github.com/meetinglens/meetinglens/internal/domain/entities"
	pkgvalidator "github.com/meetinglens/meetinglens/pkg/validator"
)

type stubService struct {
	report entities.AnalysisReport
	panics bool
}

func (s *stubService) AnalyzeMeeting(_ context.Context, _ string) entities.AnalysisReport {
	if s.panics {
		panic("defect in normalization")
	}
	return s.report
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/analyze")
	return c, rec
}

func TestAnalyze_Success(t *testing.T) {
	svc := &stubService{report: entities.AnalysisReport{
		Summary:                 []string{"budget approved"},
		Tasks:                   []entities.TaskItem{{Owner: "alice", Task: "draft plan", Deadline: "Friday", Priority: "high"}},
		NextMeeting:             "next Tuesday",
		NumberOfChunksProcessed: 3,
	}}
	h := NewAnalysisHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, `{"text": "A transcript."}`)
	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.NumberOfChunksProcessed != 3 {
		t.Fatalf("expected 3 chunks, got %d", resp.NumberOfChunksProcessed)
	}
	if len(resp.Tasks) != 1 || resp.Tasks[0].Owner != "alice" {
		t.Fatalf("unexpected tasks %v", resp.Tasks)
	}
}

func TestAnalyze_PipelinePanicYieldsEmptyReport(t *testing.T) {
	h := NewAnalysisHandler(&stubService{panics: true}, zap.NewNop())

	c, rec := newTestContext(t, `{"text": "A transcript."}`)
	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// The endpoint fallback reports zero chunks, unlike the degraded
	// pipeline path which keeps the true count.
	if resp.NumberOfChunksProcessed != 0 {
		t.Fatalf("expected 0 chunks on pipeline failure, got %d", resp.NumberOfChunksProcessed)
	}
	if resp.Summary == nil || resp.Tasks == nil {
		t.Fatal("fallback report must keep non-nil fields")
	}
	if len(resp.Summary) != 0 || len(resp.Tasks) != 0 || resp.NextMeeting != "" {
		t.Fatalf("fallback report must be empty, got %+v", resp)
	}
}

func TestAnalyze_InvalidPayload(t *testing.T) {
	h := NewAnalysisHandler(&stubService{}, zap.NewNop())

	c, rec := newTestContext(t, `{"text": `)
	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyze_EmptyTextAccepted(t *testing.T) {
	svc := &stubService{report: entities.AnalysisReport{
		Summary: []string{},
		Tasks:   []entities.TaskItem{},
	}}
	h := NewAnalysisHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, `{"text": ""}`)
	if err := h.Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("empty text is valid input, expected 200, got %d", rec.Code)
	}
}
