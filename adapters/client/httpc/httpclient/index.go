package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/adapters/logger"
)

const ErrPrefix = "httpc"

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &St{
		lg:   lg,
		opts: opts,
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

// Do retries only when no response was received at all.
func (c *St) Do(ctx context.Context, req *httpc.RequestSt) (*httpc.ResponseSt, error) {
	if req == nil {
		return nil, errors.New(ErrPrefix + ": nil request")
	}

	opts := c.opts.GetMergedWith(req.Opts)

	origLogFlags := opts.LogFlags

	var err error
	var rep *httpc.ResponseSt

	for i := opts.RetryCount; i >= 0; i-- {
		if i == 0 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		rep, err = c.do(ctx, req, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			if i > 0 && opts.RetryInterval > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(opts.RetryInterval):
				}
			}
			continue
		}

		return rep, nil
	}

	return nil, err
}

func (c *St) do(ctx context.Context, reqSt *httpc.RequestSt, opts httpc.OptionsSt) (*httpc.ResponseSt, error) {
	var err error

	logPrefix := opts.BaseLogPrefix + opts.LogPrefix
	logError := opts.LogFlags&httpc.NoLogError <= 0

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(logPrefix+"request",
			"method", reqSt.Method,
			"uri", reqSt.Uri,
			"body", string(reqSt.Body),
		)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var body io.Reader
	if len(reqSt.Body) > 0 {
		body = bytes.NewReader(reqSt.Body)
	}

	req, err := http.NewRequestWithContext(ctx, reqSt.Method, reqSt.Uri, body)
	if err != nil {
		if logError {
			c.lg.Errorw(logPrefix+"Fail to create http-request", err, "uri", reqSt.Uri)
		}
		return nil, err
	}

	// Headers
	httpc.MergeHeaders(req.Header, opts.BaseHeaders, reqSt.Headers)

	// Query params
	if len(reqSt.Params) > 0 {
		qPars := httpc.MergeValues(req.URL.Query(), reqSt.Params)
		req.URL.RawQuery = qPars.Encode()
	}

	// Do request
	rep, err := opts.Client.Do(req)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to send http-request", err,
				"method", reqSt.Method,
				"uri", req.URL.String(),
				"req_body", string(reqSt.Body),
			)
		}
		return nil, err
	}
	defer rep.Body.Close()

	// read response body
	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(
				logPrefix+"Fail to read body", err,
				"method", reqSt.Method,
				"uri", req.URL.String(),
			)
		}
		return nil, err
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		if logError {
			c.lg.Warnw(
				logPrefix+"Bad status code",
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"uri", req.URL.String(),
			)
		}
	} else if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(logPrefix+"response",
			"status_code", rep.StatusCode,
			"uri", req.URL.String(),
			"body", string(repBody),
		)
	}

	return &httpc.ResponseSt{
		StatusCode: rep.StatusCode,
		Headers:    rep.Header,
		Body:       repBody,
	}, nil
}
