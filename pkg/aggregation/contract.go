package aggregation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Executor runs an assembled pipeline against stored data and returns the
// resulting documents. It is the only capability the builder requires from a
// data store.
type Executor interface {
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)
}
