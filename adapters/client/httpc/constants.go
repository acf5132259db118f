package httpc

const (
	LogRequest  = 1
	LogResponse = 2
	NoLogError  = 4
)

const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"

	MimeJson      = "application/json"
	MimeForm      = "application/x-www-form-urlencoded"
	MimeMultipart = "multipart/form-data"
)
