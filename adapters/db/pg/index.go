package pg

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rendau/rester/adapters/db"
	"github.com/rendau/rester/adapters/logger"
)

type St struct {
	debug bool
	lg    logger.WarnAndError

	Con *pgxpool.Pool
}

type OptionsSt struct {
	Dsn               string
	Timezone          string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

func New(debug bool, lg logger.WarnAndError, opts OptionsSt) (*St, error) {
	cfg, err := opts.getConfig()
	if err != nil {
		lg.Errorw(ErrPrefix+": Fail to create config", err)
		return nil, err
	}

	dbPool, err := pgxpool.ConnectConfig(context.Background(), cfg)
	if err != nil {
		lg.Errorw(ErrPrefix+": Fail to connect to db", err)
		return nil, err
	}

	return &St{
		debug: debug,
		lg:    lg,
		Con:   dbPool,
	}, nil
}

func (o *OptionsSt) mergeWithDefaults() {
	if o.Timezone == "" {
		o.Timezone = defaultOptions.Timezone
	}
	if o.MaxConns == 0 {
		o.MaxConns = defaultOptions.MaxConns
	}
	if o.MinConns == 0 {
		o.MinConns = defaultOptions.MinConns
	}
	if o.MaxConnLifetime == 0 {
		o.MaxConnLifetime = defaultOptions.MaxConnLifetime
	}
	if o.MaxConnIdleTime == 0 {
		o.MaxConnIdleTime = defaultOptions.MaxConnIdleTime
	}
	if o.HealthCheckPeriod == 0 {
		o.HealthCheckPeriod = defaultOptions.HealthCheckPeriod
	}
}

func (o OptionsSt) getConfig() (*pgxpool.Config, error) {
	o.mergeWithDefaults()

	cfg, err := pgxpool.ParseConfig(o.Dsn)
	if err != nil {
		return nil, err
	}

	cfg.ConnConfig.RuntimeParams["timezone"] = o.Timezone
	cfg.MaxConns = o.MaxConns
	cfg.MinConns = o.MinConns
	cfg.MaxConnLifetime = o.MaxConnLifetime
	cfg.MaxConnIdleTime = o.MaxConnIdleTime
	cfg.HealthCheckPeriod = o.HealthCheckPeriod
	cfg.LazyConnect = true

	return cfg, nil
}

func (d *St) Close() {
	d.Con.Close()
}

func (d *St) HErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		err = db.ErrNoRows
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			d.lg.Errorw(ErrPrefix, err, "code", pgErr.Code, "table", pgErr.TableName)
		} else {
			d.lg.Errorw(ErrPrefix, err)
		}
	}

	return err
}

// query

func (d *St) DbExec(ctx context.Context, sql string, args ...any) error {
	_, err := d.Con.Exec(ctx, sql, args...)
	return d.HErr(err)
}

func (d *St) DbQueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.Con.QueryRow(ctx, sql, args...)
}

func (d *St) DbExecM(ctx context.Context, sql string, argMap map[string]any) error {
	rbSql, args := d.queryRebindNamed(sql, argMap)

	return d.DbExec(ctx, rbSql, args...)
}

func (d *St) queryRebindNamed(sql string, argMap map[string]any) (string, []any) {
	resultQuery, args, missing := RebindNamed(sql, argMap)

	if d.debug {
		for _, x := range missing {
			d.lg.Errorw(ErrPrefix+": missing param", nil, "param", x, "query", resultQuery)
		}
	}

	return resultQuery, args
}

// RebindNamed replaces ${name} params with positional $n ones. Names are
// bound in sorted order, so the result is stable. Params left without a
// value are returned as missing.
func RebindNamed(sql string, argMap map[string]any) (string, []any, []string) {
	keys := make([]string, 0, len(argMap))
	for k := range argMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	resultQuery := sql
	args := make([]any, 0, len(argMap))

	for _, k := range keys {
		if strings.Contains(resultQuery, "${"+k+"}") {
			args = append(args, argMap[k])
			resultQuery = strings.ReplaceAll(resultQuery, "${"+k+"}", "$"+strconv.Itoa(len(args)))
		}
	}

	var missing []string
	if strings.Contains(resultQuery, "${") {
		missing = queryParamRegexp.FindAllString(resultQuery, -1)
	}

	return resultQuery, args, missing
}
