package rester

import (
	"net/http"

	"github.com/rendau/rester/adapters/accesslog"
)

// Capabilities a request definition may implement. Each one is optional and
// is detected once, when the model is created.

type HasFinalEndpoint interface {
	FinalEndpoint() string
}

type WithBaseUrl interface {
	BaseUrl() string
}

type WithApiRoute interface {
	ApiRoute() string
}

type WithRequestHeaders interface {
	DefaultRequestHeaders() map[string]string
}

type WithDefaultPayload interface {
	DefaultPayload() Payload
}

type WithLogStrategy interface {
	LogStrategy() accesslog.Strategy
}

type RequestHeaderInterceptor interface {
	InterceptRequestHeader(headers map[string]string) map[string]string
}

type PayloadInterceptor interface {
	InterceptPayload(payload Payload) Payload
}

type ResponseContentInterceptor interface {
	InterceptResponseContent(content string) string
}

type ResponseHeaderInterceptor interface {
	InterceptResponseHeader(headers http.Header) http.Header
}

type AccessLogInterceptor interface {
	InterceptAccessLog() accesslog.Record
}
