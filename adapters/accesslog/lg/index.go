package lg

import (
	"context"

	"github.com/rendau/rester/adapters/accesslog"
	"github.com/rendau/rester/adapters/logger"
)

const defaultMsg = "Rester access log"

// St writes records as structured log lines.
type St struct {
	lg  logger.Lite
	msg string
}

func New(lg logger.Lite, msg string) *St {
	if msg == "" {
		msg = defaultMsg
	}

	return &St{
		lg:  lg,
		msg: msg,
	}
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	args := make([]any, 0, len(rec)*2)
	for _, k := range rec.SortedKeys() {
		args = append(args, k, rec[k])
	}

	s.lg.Infow(s.msg, args...)

	return nil
}
