package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meetinglens/meetinglens/internal/domain/entities"
)

// TextCompleter is the minimal capability the pipeline needs from the
// external model: a prompt goes in, the raw completion text comes out.
// Sampling is expected to be deterministic.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// extractor is the shared invoke-model → extract-JSON → normalize →
// catch-all procedure. The chunk analyzer and the merger differ only in how
// they build their prompt; everything after that is identical.
type extractor struct {
	model  TextCompleter
	logger *zap.Logger
}

// run sends the prompt to the model, pulls the first brace-delimited object
// out of the response and normalizes it. Every failure — transport, missing
// JSON, malformed JSON — is folded into an empty-shaped result carrying the
// error message. Callers always receive a usable value.
func (e *extractor) run(ctx context.Context, prompt string) entities.ExtractionResult {
	raw, err := e.model.Complete(ctx, prompt)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("model call failed", zap.Error(err))
		}
		return failedResult(err)
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("model response not parseable",
				zap.Error(err),
				zap.Int("response_length", len(raw)),
			)
		}
		return failedResult(err)
	}

	return normalizeResult(obj)
}

const extractionInstruction = "You are an expert meeting assistant. Extract the following from the transcript chunk as JSON: " +
	"summary (list of key points), tasks (list of {owner, task, deadline, priority}), next_meeting (string). " +
	"Respond ONLY with valid JSON."

// buildChunkPrompt builds the fixed extraction prompt for one chunk.
func buildChunkPrompt(chunk string) string {
	return fmt.Sprintf("%s\n\nTranscript:\n%s", extractionInstruction, chunk)
}

// buildMergePrompt builds the fixed deduplication prompt over all chunk
// results. The collected fields are serialized as three parallel sequences.
func buildMergePrompt(results []entities.ExtractionResult) string {
	summaries := make([][]string, 0, len(results))
	tasks := make([][]entities.TaskItem, 0, len(results))
	nextMeetings := make([]string, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, r.Summary)
		tasks = append(tasks, r.Tasks)
		nextMeetings = append(nextMeetings, r.NextMeeting)
	}

	sb, _ := json.Marshal(summaries)
	tb, _ := json.Marshal(tasks)
	nb, _ := json.Marshal(nextMeetings)

	return fmt.Sprintf("Given these partial meeting analyses, merge into a single JSON with: "+
		"summary (combine, deduplicate), tasks (deduplicate by owner/task, keep best deadline/priority), "+
		"next_meeting (choose most relevant). Respond ONLY with valid JSON.\n"+
		"Summaries: %s\nTasks: %s\nNext meetings: %s", sb, tb, nb)
}

// extractJSONObject finds the first brace-delimited {...} substring in the
// raw response and decodes it. Models routinely wrap their JSON in prose or
// markdown fences; everything outside the outermost braces is ignored.
func extractJSONObject(raw string) (map[string]interface{}, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("malformed JSON in model response: %w", err)
	}
	return obj, nil
}

// normalizeResult coerces the decoded object to the declared result shape:
// a non-list summary is wrapped in a single-element list, a missing or
// mistyped tasks field becomes an empty list, a missing or mistyped
// next_meeting becomes an empty string.
func normalizeResult(raw map[string]interface{}) entities.ExtractionResult {
	out := entities.EmptyExtractionResult()

	switch v := raw["summary"].(type) {
	case nil:
	case []interface{}:
		for _, item := range v {
			out.Summary = append(out.Summary, toString(item))
		}
	default:
		out.Summary = []string{toString(v)}
	}

	if items, ok := raw["tasks"].([]interface{}); ok {
		for _, item := range items {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			out.Tasks = append(out.Tasks, entities.TaskItem{
				Owner:    toString(m["owner"]),
				Task:     toString(m["task"]),
				Deadline: toString(m["deadline"]),
				Priority: toString(m["priority"]),
			})
		}
	}

	if s, ok := raw["next_meeting"].(string); ok {
		out.NextMeeting = s
	}

	return out
}

func failedResult(err error) entities.ExtractionResult {
	res := entities.EmptyExtractionResult()
	res.Error = err.Error()
	return res
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
