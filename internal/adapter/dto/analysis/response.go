package analysis

import (
	"github.com/meetinglens/meetinglens/internal/domain/entities"
)

// AnalyzeResponse is the flat report returned by POST /analyze
type AnalyzeResponse struct {
	Summary                 []string  `json:"summary"`
	Tasks                   []TaskDTO `json:"tasks"`
	NextMeeting             string    `json:"next_meeting"`
	NumberOfChunksProcessed int       `json:"number_of_chunks_processed"`
}

// TaskDTO is one extracted action item
type TaskDTO struct {
	Owner    string `json:"owner"`
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

// FromReport converts the domain report to the response shape
func FromReport(report entities.AnalysisReport) AnalyzeResponse {
	tasks := make([]TaskDTO, 0, len(report.Tasks))
	for _, t := range report.Tasks {
		tasks = append(tasks, TaskDTO{
			Owner:    t.Owner,
			Task:     t.Task,
			Deadline: t.Deadline,
			Priority: t.Priority,
		})
	}

	summary := report.Summary
	if summary == nil {
		summary = []string{}
	}

	return AnalyzeResponse{
		Summary:                 summary,
		Tasks:                   tasks,
		NextMeeting:             report.NextMeeting,
		NumberOfChunksProcessed: report.NumberOfChunksProcessed,
	}
}

// EmptyResponse returns the all-empty report shape with a zero chunk count.
// It is the endpoint-level fallback when the pipeline itself fails.
func EmptyResponse() AnalyzeResponse {
	return AnalyzeResponse{
		Summary: []string{},
		Tasks:   []TaskDTO{},
	}
}
