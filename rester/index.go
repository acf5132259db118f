package rester

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rendau/rester/adapters/accesslog"
	"github.com/rendau/rester/adapters/accesslog/file"
	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/adapters/client/httpc/httpclient"
	"github.com/rendau/rester/adapters/logger"
	"github.com/rendau/rester/adapters/logger/zap"
	"github.com/rendau/rester/resterErrs"
	"github.com/rendau/rester/resterTools"
)

// Model builds and sends one request per Send call. Builder methods and Send
// may be called concurrently, every Send works on its own copy of the
// configuration and the last finished call defines the response state.
type Model struct {
	lg      logger.Lite
	httpc   httpc.HttpC
	caps    HooksSt
	opts    OptionsSt
	fileLog accesslog.Strategy

	mu  sync.RWMutex
	cfg configSt

	sent     bool
	endpoint string
	rep      ResponseSt
	snapshot SnapshotSt
}

func New(def any, opts OptionsSt) *Model {
	if opts.Lg == nil {
		opts.Lg = zap.NewNop()
	}
	if opts.HttpC == nil {
		opts.HttpC = httpclient.New(opts.Lg, httpc.OptionsSt{})
	}
	if opts.LogFilePath == "" {
		opts.LogFilePath = accesslog.DefaultFilePath
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Model{
		lg:      opts.Lg,
		httpc:   opts.HttpC,
		caps:    detectCaps(def).GetMergedWith(opts.Hooks),
		opts:    opts,
		fileLog: file.New(opts.LogFilePath),
		cfg: configSt{
			headers:     map[string]string{},
			contentType: defaultContentType,
			method:      defaultMethod,
			log:         opts.Log,
		},
	}
}

// builder

func (m *Model) update(f func(cfg *configSt)) *Model {
	m.mu.Lock()
	defer m.mu.Unlock()

	f(&m.cfg)

	return m
}

func (m *Model) AddPayload(p Payload) *Model {
	return m.update(func(cfg *configSt) {
		cfg.payload = cfg.payload.Merge(p)
	})
}

func (m *Model) AddPayloadMap(data map[string]any) *Model {
	return m.AddPayload(PayloadFromMap(data))
}

func (m *Model) AddHeaders(data map[string]string) *Model {
	return m.update(func(cfg *configSt) {
		for k, v := range data {
			cfg.headers[k] = v
		}
	})
}

func (m *Model) AddQuery(v url.Values) *Model {
	return m.update(func(cfg *configSt) {
		cfg.query = httpc.MergeValues(cfg.query, v)
	})
}

// AddQueryObj adds the `form` tagged fields of obj as query params.
func (m *Model) AddQueryObj(obj any) *Model {
	return m.AddQuery(httpc.Object2UrlValues(obj))
}

// OverwriteEndpoint makes v the final endpoint, skipping resolution.
func (m *Model) OverwriteEndpoint(v string) *Model {
	return m.update(func(cfg *configSt) {
		cfg.endpointOverwritten = true
		cfg.endpoint = v
	})
}

func (m *Model) AppendEndpoint(v string) *Model {
	return m.update(func(cfg *configSt) {
		cfg.appendEndpoint = v
	})
}

func (m *Model) AssignBaseUri(v string) *Model {
	return m.update(func(cfg *configSt) {
		cfg.baseUrl = v
	})
}

func (m *Model) AssignApiRoute(v string) *Model {
	return m.update(func(cfg *configSt) {
		cfg.apiRoute = v
	})
}

func (m *Model) WithMethod(v Method) *Model {
	return m.update(func(cfg *configSt) {
		cfg.method = v
	})
}

func (m *Model) WithContentType(v ContentType) *Model {
	return m.update(func(cfg *configSt) {
		cfg.contentType = v
	})
}

func (m *Model) AsJson() *Model {
	return m.WithContentType(ContentTypeJson)
}

func (m *Model) AsFormParams() *Model {
	return m.WithContentType(ContentTypeFormParams)
}

// AsMultipart encodes the payload as multipart/form-data. An io.Reader part
// is consumed by the first Send, use a func() io.Reader for reusable models.
func (m *Model) AsMultipart() *Model {
	return m.WithContentType(ContentTypeMultipart)
}

// AsRawBody sends body untouched. A nil body falls back to the json-encoded payload.
func (m *Model) AsRawBody(body []byte) *Model {
	return m.update(func(cfg *configSt) {
		cfg.contentType = ContentTypeRawBody
		cfg.rawBody = body
	})
}

func (m *Model) WithLog(v bool) *Model {
	return m.update(func(cfg *configSt) {
		cfg.log = v
	})
}

// send

// Send dispatches the request. Only configuration problems are returned as
// errors (*resterErrs.ApiErr), failed HTTP calls end up in the response.
func (m *Model) Send(ctx context.Context) (ResponseSt, error) {
	m.mu.RLock()
	cfg := m.cfg.clone()
	m.mu.RUnlock()

	endpoint := resolveEndpoint(m.caps, cfg, m.opts.EndpointJoin)

	headers, payload := mergeRequestData(m.caps, cfg)

	headers, payload, snapshot := interceptRequestData(m.caps, headers, payload)

	if endpoint == "" {
		return ResponseSt{}, resterErrs.NewApiErr(resterErrs.EndpointNotSet, "Endpoint not set")
	}

	if !cfg.method.Valid() {
		return ResponseSt{}, resterErrs.NewApiErr(resterErrs.BadMethod, "Unknown HTTP method "+string(cfg.method))
	}

	body, bodyContentType, err := buildBody(cfg.contentType, payload, cfg.rawBody)
	if err != nil {
		return ResponseSt{}, err
	}

	req := &httpc.RequestSt{
		Method:  cfg.method.HttpMethod(),
		Uri:     endpoint,
		Params:  cfg.query,
		Headers: http.Header{},
		Body:    body,
	}
	for k, v := range headers {
		req.Headers.Set(k, v)
	}
	if bodyContentType != "" && req.Headers.Get(httpc.HeaderContentType) == "" {
		req.Headers.Set(httpc.HeaderContentType, bodyContentType)
	}

	requestAt := m.opts.Now()
	rep := m.dispatch(ctx, req)
	responseAt := m.opts.Now()

	snapshot.ResponseContent = rep.Content
	snapshot.ResponseHeaders = rep.Headers.Clone()

	if m.caps.InterceptResponseContent != nil {
		rep.Content = m.caps.InterceptResponseContent(rep.Content)
	}
	if m.caps.InterceptResponseHeader != nil {
		rep.Headers = m.caps.InterceptResponseHeader(rep.Headers.Clone())
	}

	m.mu.Lock()
	m.sent = true
	m.endpoint = endpoint
	m.rep = rep
	m.snapshot = snapshot
	m.mu.Unlock()

	if cfg.log {
		m.accessLog(ctx, endpoint, cfg.method, rep.StatusCode, requestAt, responseAt)
	}

	return ResponseSt{
		Content:    rep.Content,
		Headers:    rep.Headers.Clone(),
		StatusCode: rep.StatusCode,
	}, nil
}

func (m *Model) dispatch(ctx context.Context, req *httpc.RequestSt) ResponseSt {
	m.lg.Debugw("Rester request", "method", req.Method, "uri", req.Uri)

	httpRep, err := m.httpc.Do(ctx, req)
	if err == nil && httpRep == nil {
		err = errors.New(transportErrContent)
	}
	if err != nil {
		statusCode, content := transportErrResponse(err)

		m.lg.Warnw("Rester request failed",
			"method", req.Method,
			"uri", req.Uri,
			"status_code", statusCode,
			"error", err.Error(),
		)

		return ResponseSt{
			Content:    content,
			Headers:    http.Header{},
			StatusCode: statusCode,
		}
	}

	rep := ResponseSt{
		Content:    string(httpRep.Body),
		Headers:    httpRep.Headers,
		StatusCode: httpRep.StatusCode,
	}
	if rep.Headers == nil {
		rep.Headers = http.Header{}
	}
	if rep.Content == "" && (rep.StatusCode < 200 || rep.StatusCode > 299) {
		rep.Content = http.StatusText(rep.StatusCode)
	}

	m.lg.Debugw("Rester response", "uri", req.Uri, "status_code", rep.StatusCode)

	return rep
}

// transportErrResponse takes the status and body carried by err, if any.
func transportErrResponse(err error) (int, string) {
	statusCode := transportErrStatusCode
	content := err.Error()

	var apiErr *resterErrs.ApiErr
	if errors.As(err, &apiErr) {
		statusCode = apiErr.HttpStatusCode()
		switch {
		case len(apiErr.Body) > 0:
			content = string(apiErr.Body)
		case apiErr.Message != "":
			content = apiErr.Message
		}
	}

	if strings.TrimSpace(content) == "" {
		content = transportErrContent
	}

	return statusCode, content
}

// accessors

// Get returns the response state of the last Send.
func (m *Model) Get() ResponseSt {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ResponseSt{
		Content:    m.rep.Content,
		Headers:    m.rep.Headers.Clone(),
		StatusCode: m.rep.StatusCode,
	}
}

func (m *Model) GetContent() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rep.Content
}

// GetStatusCode reports false until a Send has completed.
func (m *Model) GetStatusCode() (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rep.StatusCode, m.sent
}

func (m *Model) GetResponseHeaders() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rep.Headers.Clone()
}

// JsonToArray decodes the content into generic values, nil when it is not json.
func (m *Model) JsonToArray() any {
	var res any

	if err := json.Unmarshal([]byte(m.GetContent()), &res); err != nil {
		return nil
	}

	return res
}

func (m *Model) JsonTo(dst any) error {
	if err := json.Unmarshal([]byte(m.GetContent()), dst); err != nil {
		return resterErrs.ErrWithDesc{Err: resterErrs.BadJson, Desc: err.Error()}
	}
	return nil
}

func (m *Model) Snapshot() SnapshotSt {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return SnapshotSt{
		RequestHeaders:  resterTools.CopyMap(m.snapshot.RequestHeaders),
		Payload:         m.snapshot.Payload.Clone(),
		ResponseContent: m.snapshot.ResponseContent,
		ResponseHeaders: m.snapshot.ResponseHeaders.Clone(),
	}
}

// Endpoint returns the endpoint resolved by the last Send.
func (m *Model) Endpoint() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.endpoint
}
