package accesslog

import (
	"context"
)

// Record is one access-log entry. Keys become file fields, table columns or
// document fields depending on the strategy.
type Record map[string]any

type Strategy interface {
	Log(ctx context.Context, rec Record) error
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context, rec Record) error

func (f StrategyFunc) Log(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}
