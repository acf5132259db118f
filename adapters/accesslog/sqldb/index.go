package sqldb

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/rendau/rester/adapters/accesslog"
)

const (
	PlaceholderQuestion = "?"
	PlaceholderDollar   = "$"
)

type OptionsSt struct {
	Table       string
	Placeholder string
}

// St inserts every record as a row, columns are the record keys.
type St struct {
	db   *sql.DB
	opts OptionsSt
}

func New(db *sql.DB, opts OptionsSt) (*St, error) {
	if opts.Table == "" {
		opts.Table = accesslog.DefaultTable
	}
	if opts.Placeholder == "" {
		opts.Placeholder = PlaceholderQuestion
	}

	if err := accesslog.ValidateIdentifier(opts.Table); err != nil {
		return nil, err
	}

	return &St{
		db:   db,
		opts: opts,
	}, nil
}

// Migrate creates the table with the default record columns when it is absent.
func (s *St) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `create table if not exists "`+s.opts.Table+`" (
		`+accesslog.FieldRequestId+` text,
		`+accesslog.FieldUri+` text,
		`+accesslog.FieldMethod+` text,
		`+accesslog.FieldStatusCode+` integer,
		`+accesslog.FieldRequestAt+` text,
		`+accesslog.FieldResponseAt+` text
	)`)

	return err
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	query, args, err := s.insertQuery(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)

	return err
}

func (s *St) insertQuery(rec accesslog.Record) (string, []any, error) {
	keys := rec.SortedKeys()

	cols := make([]string, 0, len(keys))
	phs := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))

	for i, k := range keys {
		if err := accesslog.ValidateIdentifier(k); err != nil {
			return "", nil, err
		}

		v, err := accesslog.ScalarValue(rec[k])
		if err != nil {
			return "", nil, err
		}

		cols = append(cols, `"`+k+`"`)
		args = append(args, v)

		if s.opts.Placeholder == PlaceholderDollar {
			phs = append(phs, "$"+strconv.Itoa(i+1))
		} else {
			phs = append(phs, "?")
		}
	}

	return `insert into "` + s.opts.Table + `" (` + strings.Join(cols, ", ") + `) values (` + strings.Join(phs, ", ") + `)`, args, nil
}
