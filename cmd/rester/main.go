package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rendau/rester/adapters/accesslog"
	pgLog "github.com/rendau/rester/adapters/accesslog/pg"
	"github.com/rendau/rester/adapters/accesslog/sqldb"
	dbPg "github.com/rendau/rester/adapters/db/pg"
	"github.com/rendau/rester/adapters/logger"
	"github.com/rendau/rester/adapters/logger/zap"
	"github.com/rendau/rester/config"
	"github.com/rendau/rester/rester"
	"github.com/rendau/rester/scaffold"
	"github.com/spf13/pflag"
	_ "modernc.org/sqlite" // driver
)

const usage = `Usage:
    rester create --group=<group> --api-name=<name> [--base-class=yes|no]
    rester send --url=<url> [--method=get] [-H "K: V"]... [-d k=v]... [--log]
                [--log-sqlite=<db>] [--log-pg=<dsn>]
`

var flagKeys = map[string]string{
	"LOG_LEVEL":     "log-level",
	"DEBUG":         "debug",
	"APP_PATH":      "app-path",
	"LOG_FILE_PATH": "log-file",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, out io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(out, usage)
		return 2
	}

	switch args[0] {
	case "create":
		return runCreate(args[1:], out)
	case "send":
		return runSend(ctx, args[1:], out)
	default:
		_, _ = fmt.Fprint(out, usage)
		return 2
	}
}

func commonFlags(name string) (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	confPath := fs.String("config", "", "config file path")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Bool("debug", false, "development logging")
	fs.String("app-path", "", "application root")
	fs.String("log-file", "", "access log file")

	return fs, confPath
}

func load(fs *pflag.FlagSet, confPath string) (*config.Conf, *zap.St, error) {
	conf, err := config.Load(confPath, fs, flagKeys)
	if err != nil {
		return nil, nil, err
	}

	return conf, zap.New(conf.LogLevel, conf.Debug), nil
}

func runCreate(args []string, out io.Writer) int {
	fs, confPath := commonFlags("create")
	group := fs.String("group", "", "api group")
	apiName := fs.String("api-name", "", "api definition name")
	baseClass := fs.String("base-class", scaffold.BaseClassYes, "create the shared group base: yes or no")
	fs.SetOutput(out)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	conf, lg, err := load(fs, *confPath)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 1
	}
	defer lg.Sync()

	res, err := scaffold.New(lg).Create(scaffold.OptionsSt{
		AppPath:   conf.AppPath,
		Group:     *group,
		ApiName:   *apiName,
		BaseClass: *baseClass,
	})
	if err != nil {
		_, _ = fmt.Fprint(out, scaffold.Help)
		if *group != "" && *apiName != "" {
			_, _ = fmt.Fprintln(out, "\n"+err.Error())
			return 1
		}
		return 0
	}

	if res.DirCreated {
		_, _ = fmt.Fprintln(out, "Created directory:", res.Dir)
	} else {
		_, _ = fmt.Fprintln(out, "Directory already exists:", res.Dir)
	}
	for _, p := range res.Created {
		_, _ = fmt.Fprintln(out, "Created:", p)
	}
	for _, p := range res.Skipped {
		_, _ = fmt.Fprintln(out, "Skipped existing:", p)
	}

	return 0
}

func runSend(ctx context.Context, args []string, out io.Writer) int {
	fs, confPath := commonFlags("send")
	uri := fs.String("url", "", "endpoint")
	method := fs.String("method", string(rester.MethodGet), "http method")
	contentType := fs.String("content-type", string(rester.ContentTypeJson), "json, form_params, multipart or raw-body")
	headers := fs.StringArrayP("header", "H", nil, `request header "Key: Value"`)
	data := fs.StringArrayP("data", "d", nil, "payload field key=value")
	query := fs.StringArray("query", nil, "query param key=value")
	withLog := fs.Bool("log", false, "write an access log record")
	logSqlite := fs.String("log-sqlite", "", "sqlite database for access logs instead of the file")
	logPg := fs.String("log-pg", "", "postgres dsn for access logs instead of the file")
	fs.SetOutput(out)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *uri == "" {
		_, _ = fmt.Fprint(out, usage)
		return 2
	}

	conf, lg, err := load(fs, *confPath)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 1
	}
	defer lg.Sync()

	m, err := rester.ParseMethod(*method)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 1
	}

	opts := rester.OptionsSt{
		Lg:          lg,
		Log:         *withLog,
		LogFilePath: conf.LogFilePath,
	}

	logStrategy, closeLog, err := openLogStrategy(ctx, lg, conf.Debug, *logSqlite, *logPg)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 1
	}
	defer closeLog()

	opts.LogStrategy = logStrategy

	model := rester.New(nil, opts).
		OverwriteEndpoint(*uri).
		WithMethod(m).
		WithContentType(rester.ContentType(*contentType)).
		AddHeaders(parseHeaders(*headers)).
		AddPayload(parsePairs(*data))

	q := url.Values{}
	for _, v := range *query {
		k, val, _ := strings.Cut(v, "=")
		q.Add(k, val)
	}
	model.AddQuery(q)

	rep, err := model.Send(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 1
	}

	_, _ = fmt.Fprintln(out, rep.StatusCode)
	_, _ = fmt.Fprintln(out, rep.Content)

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		return 1
	}

	return 0
}

// openLogStrategy builds the access-log strategy from the --log-sqlite and
// --log-pg flags. Nil means the model's default file strategy.
func openLogStrategy(ctx context.Context, lg logger.WarnAndError, debug bool, sqlitePath, pgDsn string) (accesslog.Strategy, func(), error) {
	var strategies []accesslog.Strategy
	var closers []func()

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if sqlitePath != "" {
		db, err := sql.Open("sqlite", sqlitePath)
		if err != nil {
			lg.Errorw("Fail to open sqlite", err, "path", sqlitePath)
			return nil, nil, err
		}
		db.SetMaxOpenConns(1)
		closers = append(closers, func() { _ = db.Close() })

		strategy, err := sqldb.New(db, sqldb.OptionsSt{})
		if err != nil {
			closeAll()
			return nil, nil, err
		}

		if err = strategy.Migrate(ctx); err != nil {
			lg.Errorw("Fail to migrate access log table", err, "path", sqlitePath)
			closeAll()
			return nil, nil, err
		}

		strategies = append(strategies, strategy)
	}

	if pgDsn != "" {
		con, err := dbPg.New(debug, lg, dbPg.OptionsSt{Dsn: pgDsn})
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, con.Close)

		strategy, err := pgLog.New(con, "")
		if err != nil {
			closeAll()
			return nil, nil, err
		}

		strategies = append(strategies, strategy)
	}

	switch len(strategies) {
	case 0:
		return nil, closeAll, nil
	case 1:
		return strategies[0], closeAll, nil
	default:
		return accesslog.Multi(strategies...), closeAll, nil
	}
}

func parseHeaders(values []string) map[string]string {
	res := make(map[string]string, len(values))

	for _, v := range values {
		k, val, ok := strings.Cut(v, ":")
		if !ok {
			continue
		}
		res[strings.TrimSpace(k)] = strings.TrimSpace(val)
	}

	return res
}

func parsePairs(values []string) rester.Payload {
	res := rester.Payload{}

	for _, v := range values {
		k, val, _ := strings.Cut(v, "=")
		res = res.Set(k, val)
	}

	return res
}
