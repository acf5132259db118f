package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rendau/rester/adapters/client/httpc"
	"github.com/rendau/rester/adapters/logger"
	"github.com/rendau/rester/resterErrs"
)

const (
	ErrPageNotFound = resterErrs.Err("page_not_found")

	// AnyUri matches requests without an exact response.
	AnyUri = "*"
)

type St struct {
	lg logger.Lite

	requests  []*httpc.RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type ResponseSt struct {
	StatusCode int
	Headers    http.Header
	Obj        any
	Raw        []byte
	Err        error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*httpc.RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

func (c *St) SetResponse(uri string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	if response.StatusCode == 0 {
		response.StatusCode = http.StatusOK
	}

	c.responses[uri] = response
}

func (c *St) GetOptions() httpc.OptionsSt {
	return httpc.OptionsSt{}
}

func (c *St) Do(ctx context.Context, req *httpc.RequestSt) (*httpc.ResponseSt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, ok := c.responses[req.Uri]
	if !ok {
		response, ok = c.responses[AnyUri]
	}
	if !ok {
		c.lg.Infow("Httpc-mock, uri not found", "uri", req.Uri)
		return nil, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, response.Err
	}

	headers := http.Header{}
	httpc.MergeHeaders(headers, response.Headers)

	return &httpc.ResponseSt{
		StatusCode: response.StatusCode,
		Headers:    headers,
		Body:       response.Raw,
	}, nil
}

func (c *St) GetRequests() []*httpc.RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*httpc.RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

// GetRequest returns the first request sent to uri, decoding its JSON body into obj.
func (c *St) GetRequest(uri string, obj any) (*httpc.RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Uri != uri {
			continue
		}

		if len(req.Body) > 0 && obj != nil {
			err := json.Unmarshal(req.Body, obj)
			if err != nil {
				c.lg.Errorw("Fail to unmarshal json", err)
				return nil, false
			}
		}

		return req, true
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*httpc.RequestSt{}
	c.responses = map[string]ResponseSt{}
}
