package aggregation_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeExecutor records the pipeline it receives and replies with canned
// documents.
type fakeExecutor struct {
	gotPipeline mongo.Pipeline
	documents   []bson.M
	err         error
	calls       int
}

func (f *fakeExecutor) Aggregate(_ context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	f.calls++
	f.gotPipeline = pipeline

	if f.err != nil {
		return nil, f.err
	}

	return f.documents, nil
}
