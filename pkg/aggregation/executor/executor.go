package executor

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/askiada/go-mongo-pipeline/pkg/aggregation"
)

// Collection runs pipelines against a single MongoDB collection.
type Collection struct {
	coll    *mongo.Collection
	log     zerolog.Logger
	aggOpts []*options.AggregateOptions
}

// Option configures a Collection executor.
type Option func(c *Collection)

// WithLogger enables debug logging of every aggregation run. The default is
// a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Collection) {
		c.log = log
	}
}

// WithAggregateOptions passes driver aggregate options (allowDiskUse,
// collation, ...) on every run.
func WithAggregateOptions(aggOpts ...*options.AggregateOptions) Option {
	return func(c *Collection) {
		c.aggOpts = aggOpts
	}
}

// New wraps a collection so it satisfies aggregation.Executor.
func New(coll *mongo.Collection, opts ...Option) *Collection {
	c := &Collection{
		coll: coll,
		log:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Aggregate runs the pipeline and drains the cursor into memory.
func (c *Collection) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	start := time.Now()

	cursor, err := c.coll.Aggregate(ctx, pipeline, c.aggOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to run aggregation on %s", c.coll.Name())
	}

	var documents []bson.M
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, errors.Wrapf(err, "unable to decode aggregation results from %s", c.coll.Name())
	}

	c.log.Debug().
		Str("collection", c.coll.Name()).
		Int("stages", len(pipeline)).
		Int("documents", len(documents)).
		Dur("elapsed", time.Since(start)).
		Msg("aggregation complete")

	return documents, nil
}

var _ aggregation.Executor = (*Collection)(nil)
