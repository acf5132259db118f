package rester

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rendau/rester/adapters/accesslog"
	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/adapters/logger"
)

type OptionsSt struct {
	Lg    logger.Lite
	HttpC httpc.HttpC

	// Log enables access logging for every Send.
	Log bool
	// LogStrategy is used when the definition does not supply one.
	// Falls back to a file strategy at LogFilePath.
	LogStrategy accesslog.Strategy
	LogFilePath string
	LogMerge    LogMergeMode

	EndpointJoin JoinMode

	// Hooks replace capabilities of the definition, field by field.
	Hooks *HooksSt

	Now func() time.Time
}

// HooksSt is the function-field form of the capability interfaces.
type HooksSt struct {
	FinalEndpoint            func() string
	BaseUrl                  func() string
	ApiRoute                 func() string
	DefaultRequestHeaders    func() map[string]string
	DefaultPayload           func() Payload
	LogStrategy              func() accesslog.Strategy
	InterceptRequestHeader   func(headers map[string]string) map[string]string
	InterceptPayload         func(payload Payload) Payload
	InterceptResponseContent func(content string) string
	InterceptResponseHeader  func(headers http.Header) http.Header
	InterceptAccessLog       func() accesslog.Record
}

type ResponseSt struct {
	Content    string      `json:"content"`
	Headers    http.Header `json:"headers"`
	StatusCode int         `json:"status_code"`
}

// SnapshotSt holds the data as it was before interceptors ran.
type SnapshotSt struct {
	RequestHeaders  map[string]string
	Payload         Payload
	ResponseContent string
	ResponseHeaders http.Header
}

// PartSt is one multipart entry. A payload value of this type is sent as is.
// Contents may be a string, []byte, io.Reader (read once) or func() io.Reader
// (called on every Send), anything else is formatted with fmt.Sprint.
type PartSt struct {
	Name     string
	Contents any
	Filename string
	Headers  map[string]string
}

type configSt struct {
	baseUrl             string
	apiRoute            string
	endpoint            string
	appendEndpoint      string
	endpointOverwritten bool

	headers     map[string]string
	payload     Payload
	rawBody     []byte
	query       url.Values
	contentType ContentType
	method      Method
	log         bool
}

func (c configSt) clone() configSt {
	res := c

	res.headers = make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		res.headers[k] = v
	}

	res.payload = c.payload.Clone()

	if c.rawBody != nil {
		res.rawBody = append([]byte(nil), c.rawBody...)
	}

	res.query = httpc.MergeValues(c.query)

	return res
}
