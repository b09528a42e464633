package executor

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	exec := New(nil)
	assert.Equal(t, zerolog.Nop(), exec.log)
	assert.Empty(t, exec.aggOpts)
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	log := zerolog.New(os.Stderr)
	aggOpts := options.Aggregate().SetAllowDiskUse(true)

	exec := New(nil, WithLogger(log), WithAggregateOptions(aggOpts))
	assert.Equal(t, log, exec.log)
	assert.Equal(t, []*options.AggregateOptions{aggOpts}, exec.aggOpts)
}
