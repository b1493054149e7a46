package analysis

// AnalyzeRequest is the request body for transcript analysis. Empty text is
// valid and yields an empty report; the size cap guards against unbounded
// payloads.
type AnalyzeRequest struct {
	Text string `json:"text" validate:"max=1000000"`
}
