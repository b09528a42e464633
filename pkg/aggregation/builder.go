package aggregation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Builder accumulates aggregation stages in call order.
type Builder struct {
	stages   mongo.Pipeline
	executor Executor
}

// New creates a new builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		stages: mongo.Pipeline{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// append places a stage at the tail of the pipeline. Every mutator funnels
// through here so call order and stage order always match.
func (b *Builder) append(stage bson.D) *Builder {
	b.stages = append(b.stages, stage)

	return b
}

func (b *Builder) stage(kind string, payload any) *Builder {
	return b.append(bson.D{{Key: kind, Value: payload}})
}

// Len returns the number of stages appended so far.
func (b *Builder) Len() int {
	return len(b.stages)
}

// Stages returns the current pipeline without resetting the builder. The
// builder can be extended further; the returned slice shares its backing
// array with the builder until the next append grows it.
func (b *Builder) Stages() mongo.Pipeline {
	return b.stages
}

// Assemble hands the pipeline over to the caller and resets the builder to
// an empty sequence. The returned pipeline is the caller's to keep.
func (b *Builder) Assemble() mongo.Pipeline {
	stages := b.stages
	b.stages = mongo.Pipeline{}

	return stages
}

// Reset replaces the pipeline with a new empty sequence.
func (b *Builder) Reset() {
	b.stages = mongo.Pipeline{}
}

// Execute submits the current pipeline to the bound executor and returns the
// resulting documents. It returns ErrNoExecutor when the builder was created
// without one. The pipeline is left untouched either way.
func (b *Builder) Execute(ctx context.Context) ([]bson.M, error) {
	if b.executor == nil {
		return nil, ErrNoExecutor
	}

	return b.executor.Aggregate(ctx, b.stages)
}
