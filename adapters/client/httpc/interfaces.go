package httpc

import (
	"context"
)

// HttpC performs exactly one logical request. Any status code is a response,
// the returned error is only set when no response was received.
type HttpC interface {
	GetOptions() OptionsSt
	Do(ctx context.Context, req *RequestSt) (*ResponseSt, error)
}
