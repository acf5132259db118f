package pg

import (
	"context"
	"strings"

	"github.com/rendau/rester/adapters/accesslog"
	dbPg "github.com/rendau/rester/adapters/db/pg"
)

// St inserts records into a Postgres table through the pg adapter.
type St struct {
	con   dbPg.Connection
	table string
}

func New(con dbPg.Connection, table string) (*St, error) {
	if table == "" {
		table = accesslog.DefaultTable
	}

	if err := accesslog.ValidateIdentifier(table); err != nil {
		return nil, err
	}

	return &St{
		con:   con,
		table: table,
	}, nil
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	keys := rec.SortedKeys()

	cols := make([]string, 0, len(keys))
	params := make([]string, 0, len(keys))
	argMap := make(map[string]any, len(keys))

	for _, k := range keys {
		if err := accesslog.ValidateIdentifier(k); err != nil {
			return err
		}

		v, err := accesslog.ScalarValue(rec[k])
		if err != nil {
			return err
		}

		cols = append(cols, `"`+k+`"`)
		params = append(params, "${"+k+"}")
		argMap[k] = v
	}

	return s.con.DbExecM(
		ctx,
		`insert into "`+s.table+`" (`+strings.Join(cols, ", ")+`) values (`+strings.Join(params, ", ")+`)`,
		argMap,
	)
}
