package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002

	// Analysis
	ErrorCode_ANALYSIS_FAILED      ErrorCode = 2000
	ErrorCode_MODEL_UNAVAILABLE    ErrorCode = 2001
	ErrorCode_MODEL_QUOTA_EXCEEDED ErrorCode = 2002
)

// String returns the code's name
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_ANALYSIS_FAILED:
		return "ANALYSIS_FAILED"
	case ErrorCode_MODEL_UNAVAILABLE:
		return "MODEL_UNAVAILABLE"
	case ErrorCode_MODEL_QUOTA_EXCEEDED:
		return "MODEL_QUOTA_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}
