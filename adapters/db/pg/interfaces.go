package pg

import (
	"context"
)

// Connection is the part of St used by log strategies.
type Connection interface {
	DbExec(ctx context.Context, sql string, args ...any) error
	DbExecM(ctx context.Context, sql string, argMap map[string]any) error
}
