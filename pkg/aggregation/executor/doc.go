// Package executor adapts MongoDB collections to the aggregation.Executor
// contract and runs groups of builders concurrently.
package executor
