package rester

import (
	"strings"

	"github.com/rendau/rester/resterErrs"
)

// ContentType selects how the payload is encoded on the wire.
type ContentType string

const (
	ContentTypeJson       ContentType = "json"
	ContentTypeFormParams ContentType = "form_params"
	ContentTypeMultipart  ContentType = "multipart"
	ContentTypeRawBody    ContentType = "raw-body"
)

type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
)

var allowedMethods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

func (m Method) Valid() bool {
	for _, x := range allowedMethods {
		if m == x {
			return true
		}
	}
	return false
}

// HttpMethod returns the verb as it goes on the wire.
func (m Method) HttpMethod() string {
	return strings.ToUpper(string(m))
}

func ParseMethod(v string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(v)))
	if !m.Valid() {
		return "", resterErrs.NewApiErr(resterErrs.BadMethod, "Unknown HTTP method "+v)
	}
	return m, nil
}

// JoinMode controls how base url, api route and the appended part are glued.
type JoinMode int

const (
	// JoinRaw concatenates the parts as they are.
	JoinRaw JoinMode = iota
	// JoinNormalize puts exactly one slash between non-empty parts. A part
	// starting with '?' or '#' is appended as is.
	JoinNormalize
)

// LogMergeMode controls how the access-log interceptor output is combined
// with the default record fields.
type LogMergeMode int

const (
	// LogMergeDefaultsWin keeps the default fields on key collision.
	LogMergeDefaultsWin LogMergeMode = iota
	// LogMergeInterceptorWins lets interceptor fields replace default ones.
	LogMergeInterceptorWins
	// LogMergeReplace logs only the interceptor output. A nil output keeps the defaults.
	LogMergeReplace
)

const (
	defaultMethod      = MethodPost
	defaultContentType = ContentTypeJson

	transportErrStatusCode = 500
	transportErrContent    = "Rester API unknown error."
)
