package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rendau/rester/adapters/accesslog"
)

const DefaultKey = "rester_api_logs"

type OptionsSt struct {
	Url    string
	Psw    string
	Db     int
	Key    string
	MaxLen int64
}

// St pushes every record as a JSON string onto a redis list.
type St struct {
	key    string
	maxLen int64

	r redis.Cmdable
}

func New(opts OptionsSt) *St {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     opts.Url,
		Password: opts.Psw,
		DB:       opts.Db,
	}), opts)
}

func NewWithClient(r redis.Cmdable, opts OptionsSt) *St {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}

	return &St{
		key:    opts.Key,
		maxLen: opts.MaxLen,
		r:      r,
	}
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = s.r.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, s.key, raw)
		if s.maxLen > 0 {
			p.LTrim(ctx, s.key, -s.maxLen, -1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis rpush %s: %w", s.key, err)
	}

	return nil
}
