package aggregation

import "go.mongodb.org/mongo-driver/mongo"

// Option configures a Builder at construction time.
type Option func(b *Builder)

// WithExecutor binds the executor Execute submits pipelines to.
func WithExecutor(exec Executor) Option {
	return func(b *Builder) {
		b.executor = exec
	}
}

// WithStages seeds the builder with an existing pipeline instead of an empty
// one. The builder takes ownership of the slice.
func WithStages(stages mongo.Pipeline) Option {
	return func(b *Builder) {
		if stages != nil {
			b.stages = stages
		}
	}
}
