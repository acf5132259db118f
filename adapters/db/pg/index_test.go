package pg

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/rendau/rester/adapters/logger/zap"
)

func TestRebindNamed(t *testing.T) {
	tests := []struct {
		name        string
		sql         string
		argMap      map[string]any
		wantSql     string
		wantArgs    []any
		wantMissing []string
	}{
		{
			name:     "sorted binding",
			sql:      `insert into t (uri, method) values (${uri}, ${method})`,
			argMap:   map[string]any{"uri": "u", "method": "get"},
			wantSql:  `insert into t (uri, method) values ($2, $1)`,
			wantArgs: []any{"get", "u"},
		},
		{
			name:     "repeated param",
			sql:      `select ${a} + ${a}`,
			argMap:   map[string]any{"a": 1, "unused": 2},
			wantSql:  `select $1 + $1`,
			wantArgs: []any{1},
		},
		{
			name:        "missing param",
			sql:         `select ${a}, ${b}`,
			argMap:      map[string]any{"a": 1},
			wantSql:     `select $1, ${b}`,
			wantArgs:    []any{1},
			wantMissing: []string{"${b}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSql, gotArgs, gotMissing := RebindNamed(tt.sql, tt.argMap)
			if gotSql != tt.wantSql {
				t.Errorf("RebindNamed() sql = %q, want %q", gotSql, tt.wantSql)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("RebindNamed() args = %v, want %v", gotArgs, tt.wantArgs)
			}
			if !reflect.DeepEqual(gotMissing, tt.wantMissing) {
				t.Errorf("RebindNamed() missing = %v, want %v", gotMissing, tt.wantMissing)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	cfg, err := OptionsSt{Dsn: "postgres://localhost/rester", MaxConns: 3}.getConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MaxConns != 3 {
		t.Errorf("MaxConns = %v, want 3", cfg.MaxConns)
	}
	if cfg.MinConns != defaultOptions.MinConns {
		t.Errorf("MinConns = %v, want %v", cfg.MinConns, defaultOptions.MinConns)
	}
	if got := cfg.ConnConfig.RuntimeParams["timezone"]; got != defaultOptions.Timezone {
		t.Errorf("timezone = %q, want %q", got, defaultOptions.Timezone)
	}
}

func TestDbExecM(t *testing.T) {
	dsn := os.Getenv("RESTER_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("RESTER_TEST_PG_DSN is not set")
	}

	ctx := context.Background()

	d, err := New(true, zap.NewNop(), OptionsSt{Dsn: dsn})
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	err = d.DbExec(ctx, `create table if not exists rester_rebind_check (a text, b int)`)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = d.DbExec(ctx, `drop table rester_rebind_check`) }()

	err = d.DbExecM(ctx, `insert into rester_rebind_check (a, b) values (${a}, ${b})`, map[string]any{"a": "x", "b": 7})
	if err != nil {
		t.Fatal(err)
	}
}
