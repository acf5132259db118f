package rester

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rendau/rester/adapters/accesslog"
	"github.com/rendau/rester/resterTools"
)

func (m *Model) logStrategy() accesslog.Strategy {
	if m.caps.LogStrategy != nil {
		if s := m.caps.LogStrategy(); s != nil {
			return s
		}
	}

	if m.opts.LogStrategy != nil {
		return m.opts.LogStrategy
	}

	return m.fileLog
}

func (m *Model) accessLog(ctx context.Context, endpoint string, method Method, statusCode int, requestAt, responseAt time.Time) {
	defer func() {
		if r := recover(); r != nil {
			m.lg.Errorw("Rester: access log panicked", r, "uri", endpoint)
		}
	}()

	rec := accesslog.Record{
		accesslog.FieldRequestId:  uuid.NewString(),
		accesslog.FieldUri:        endpoint,
		accesslog.FieldMethod:     string(method),
		accesslog.FieldStatusCode: statusCode,
		accesslog.FieldRequestAt:  requestAt.Format(accesslog.TimeLayout),
		accesslog.FieldResponseAt: responseAt.Format(accesslog.TimeLayout),
	}

	if m.caps.InterceptAccessLog != nil {
		rec = mergeLogRecord(rec, m.caps.InterceptAccessLog(), m.opts.LogMerge)
	}

	// the record is written even if the caller gave up on ctx meanwhile
	err := m.logStrategy().Log(context.WithoutCancel(ctx), rec)
	if err != nil {
		m.lg.Errorw("Rester: fail to write access log", err, "uri", endpoint)
	}
}

func mergeLogRecord(defaults, intercepted accesslog.Record, mode LogMergeMode) accesslog.Record {
	switch mode {
	case LogMergeReplace:
		if intercepted == nil {
			return defaults
		}
		return intercepted.Copy()
	case LogMergeInterceptorWins:
		return resterTools.MergeMaps(defaults, intercepted)
	default:
		return resterTools.MergeMaps(intercepted, defaults)
	}
}
