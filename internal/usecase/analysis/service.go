package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/meetinglens/meetinglens/internal/domain/entities"
)

// Service runs the transcript analysis pipeline:
// split → per-chunk extraction → optional merge → normalize.
type Service interface {
	AnalyzeMeeting(ctx context.Context, text string) entities.AnalysisReport
}

type analysisService struct {
	ext           *extractor
	maxChunkChars int
	logger        *zap.Logger
}

// NewService constructs the analysis service around an external model
// client. maxChunkChars values <= 0 fall back to DefaultMaxChunkChars.
func NewService(model TextCompleter, maxChunkChars int, logger *zap.Logger) Service {
	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}
	return &analysisService{
		ext:           &extractor{model: model, logger: logger},
		maxChunkChars: maxChunkChars,
		logger:        logger,
	}
}

// AnalyzeMeeting analyzes the chunks sequentially, in splitter order. A
// single chunk's result is final as-is; multiple results go through exactly
// one merge call. The reported chunk count is the count the splitter
// produced, not the count of calls that succeeded.
func (s *analysisService) AnalyzeMeeting(ctx context.Context, text string) entities.AnalysisReport {
	chunks := SplitText(text, s.maxChunkChars)
	if s.logger != nil {
		s.logger.Info("transcript split into chunks",
			zap.Int("chunk_count", len(chunks)),
			zap.Int("text_length", len(text)),
		)
	}

	results := make([]entities.ExtractionResult, 0, len(chunks))
	for i, chunk := range chunks {
		res := s.ext.run(ctx, buildChunkPrompt(chunk))
		if res.Error != "" && s.logger != nil {
			s.logger.Warn("chunk analysis degraded",
				zap.Int("chunk_index", i),
				zap.String("error", res.Error),
			)
		}
		results = append(results, res)
	}

	var final entities.ExtractionResult
	switch len(results) {
	case 0:
		// Empty input: nothing to analyze, nothing to merge.
		final = entities.EmptyExtractionResult()
	case 1:
		final = results[0]
	default:
		final = s.ext.run(ctx, buildMergePrompt(results))
		if final.Error != "" && s.logger != nil {
			s.logger.Warn("merge degraded", zap.String("error", final.Error))
		}
	}

	return buildReport(final, len(chunks))
}

// buildReport pins the output shape: all four fields present, slices
// non-nil, chunk count attached.
func buildReport(res entities.ExtractionResult, chunkCount int) entities.AnalysisReport {
	if res.Summary == nil {
		res.Summary = []string{}
	}
	if res.Tasks == nil {
		res.Tasks = []entities.TaskItem{}
	}
	return entities.AnalysisReport{
		Summary:                 res.Summary,
		Tasks:                   res.Tasks,
		NextMeeting:             res.NextMeeting,
		NumberOfChunksProcessed: chunkCount,
	}
}
