package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rendau/rester/adapters/accesslog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabase = "rester"
	defaultTimeout  = 10 * time.Second
)

type OptionsSt struct {
	Uri        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// St inserts every record as a document.
type St struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func New(ctx context.Context, opts OptionsSt) (*St, error) {
	clientOptions := options.Client()
	clientOptions.ApplyURI(opts.Uri)

	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	connCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client, err := mongo.Connect(connCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	return NewWithCollection(collection(client, opts), opts.Timeout), nil
}

func NewWithCollection(coll *mongo.Collection, timeout time.Duration) *St {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &St{
		coll:    coll,
		timeout: timeout,
	}
}

func collection(client *mongo.Client, opts OptionsSt) *mongo.Collection {
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Collection == "" {
		opts.Collection = accesslog.DefaultTable
	}

	return client.Database(opts.Database).Collection(opts.Collection)
}

func (s *St) Log(ctx context.Context, rec accesslog.Record) error {
	document := make(bson.D, 0, len(rec))
	for _, k := range rec.SortedKeys() {
		document = append(document, bson.E{Key: k, Value: rec[k]})
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.coll.InsertOne(ctx, document); err != nil {
		return fmt.Errorf("inserting access log: %w", err)
	}

	return nil
}

func (s *St) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}
