package accesslog

const (
	FieldRequestId  = "request_id"
	FieldUri        = "uri"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldRequestAt  = "request_at"
	FieldResponseAt = "response_at"

	TimeLayout = "2006-01-02 15:04:05.000000"

	DefaultFilePath = "rester_api_logs.log"
	DefaultTable    = "rester_api_logs"
)
