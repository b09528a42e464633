// Package aggregation provides a fluent builder for MongoDB aggregation
// pipelines.
//
// A Builder owns one ordered sequence of stage documents. Every mutator
// appends a stage at the tail and returns the builder, so pipelines read
// top to bottom the same way they run:
//
//	pipeline := aggregation.New().
//		Match(bson.M{"is_verified": true}).
//		Group(bson.D{{Key: "_id", Value: "$gender"}}).
//		Sort(bson.D{{Key: "total", Value: -1}}).
//		Assemble()
//
// The builder performs no validation of field paths, operator names or
// payload shapes. Whatever the caller provides is placed in the stage
// document unchanged; the database is the arbiter of whether a pipeline is
// well formed. The one exception is Execute, which fails fast when the
// builder was created without an executor.
//
// A Builder is owned by a single goroutine. Concurrent mutation of the same
// instance must be serialised by the caller.
package aggregation
