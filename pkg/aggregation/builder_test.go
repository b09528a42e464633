package aggregation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/askiada/go-mongo-pipeline/pkg/aggregation"
)

func TestNew(t *testing.T) {
	t.Parallel()

	builder := aggregation.New()
	assert.Equal(t, 0, builder.Len())
	assert.Equal(t, mongo.Pipeline{}, builder.Stages())
}

func TestNewWithStages(t *testing.T) {
	t.Parallel()

	seed := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": "active"}}},
	}
	builder := aggregation.New(aggregation.WithStages(seed))
	require.Equal(t, 1, builder.Len())

	builder.Limit(5)
	assert.Equal(t, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": "active"}}},
		{{Key: "$limit", Value: int64(5)}},
	}, builder.Stages())
}

func TestNewWithNilStages(t *testing.T) {
	t.Parallel()

	builder := aggregation.New(aggregation.WithStages(nil))
	assert.Equal(t, mongo.Pipeline{}, builder.Stages())
}

func TestStagesKeepsPipeline(t *testing.T) {
	t.Parallel()

	builder := aggregation.New().Limit(1)

	assert.Equal(t, 1, len(builder.Stages()))
	assert.Equal(t, 1, len(builder.Stages()))

	builder.Skip(2)
	assert.Equal(t, 2, builder.Len())
}

func TestAssembleResets(t *testing.T) {
	t.Parallel()

	builder := aggregation.New().
		Match(bson.M{"is_verified": true}).
		Limit(10)

	pipeline := builder.Assemble()
	require.Equal(t, 2, len(pipeline))

	assert.Equal(t, 0, builder.Len())
	assert.Equal(t, mongo.Pipeline{}, builder.Assemble())
}

func TestAssembleOrderMatchesCallOrder(t *testing.T) {
	t.Parallel()

	builder := aggregation.New().
		Skip(1).
		Limit(2).
		Count("total").
		Paginate(10, 2)

	pipeline := builder.Assemble()
	require.Equal(t, 5, len(pipeline))

	assert.Equal(t, "$skip", pipeline[0][0].Key)
	assert.Equal(t, "$limit", pipeline[1][0].Key)
	assert.Equal(t, "$count", pipeline[2][0].Key)
	assert.Equal(t, "$skip", pipeline[3][0].Key)
	assert.Equal(t, "$limit", pipeline[4][0].Key)
}

func TestReset(t *testing.T) {
	t.Parallel()

	builder := aggregation.New().
		Match(bson.M{"status": "active"}).
		Limit(3)

	builder.Reset()
	assert.Equal(t, mongo.Pipeline{}, builder.Assemble())

	builder.Reset()
	assert.Equal(t, mongo.Pipeline{}, builder.Assemble())
}

func TestExecuteNoExecutor(t *testing.T) {
	t.Parallel()

	builder := aggregation.New().Match(bson.M{"status": "active"})

	documents, err := builder.Execute(context.Background())
	require.ErrorIs(t, err, aggregation.ErrNoExecutor)
	assert.Nil(t, documents)

	// the failed call must not alter the pipeline
	assert.Equal(t, 1, builder.Len())
}

func TestExecute(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{
		documents: []bson.M{{"_id": "gender", "total": int32(42)}},
	}
	builder := aggregation.New(aggregation.WithExecutor(exec)).
		Match(bson.M{"is_verified": true}).
		Count("total")

	documents, err := builder.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exec.documents, documents)
	assert.Equal(t, builder.Stages(), exec.gotPipeline)
	assert.Equal(t, 1, exec.calls)

	// executing does not consume the pipeline
	assert.Equal(t, 2, builder.Len())
}

func TestExecuteError(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{err: assert.AnError}
	builder := aggregation.New(aggregation.WithExecutor(exec)).Limit(1)

	documents, err := builder.Execute(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, documents)
	assert.Equal(t, 1, builder.Len())
}
