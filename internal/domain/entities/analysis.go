package entities

// TaskItem is one action item extracted from the transcript.
type TaskItem struct {
	Owner    string `json:"owner"`
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"` // low, medium, high, urgent
}

// ExtractionResult is the normalized output of a single model call, either
// for one transcript chunk or for the merge of several chunk results. The
// three primary fields always carry their declared types; Error is set when
// the call that produced this result was degraded.
type ExtractionResult struct {
	Summary     []string   `json:"summary"`
	Tasks       []TaskItem `json:"tasks"`
	NextMeeting string     `json:"next_meeting"`
	Error       string     `json:"error,omitempty"`
}

// EmptyExtractionResult returns a well-shaped result with empty fields.
// Slices are non-nil so the JSON rendering is [] rather than null.
func EmptyExtractionResult() ExtractionResult {
	return ExtractionResult{
		Summary: []string{},
		Tasks:   []TaskItem{},
	}
}

// AnalysisReport is the final output of one analysis request: the merged
// extraction plus the number of chunks the splitter produced.
type AnalysisReport struct {
	Summary                 []string   `json:"summary"`
	Tasks                   []TaskItem `json:"tasks"`
	NextMeeting             string     `json:"next_meeting"`
	NumberOfChunksProcessed int        `json:"number_of_chunks_processed"`
}
