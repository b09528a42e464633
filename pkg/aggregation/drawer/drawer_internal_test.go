package drawer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStageKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$match", stageKind(bson.D{{Key: "$match", Value: bson.M{}}}))
	assert.Equal(t, "(empty)", stageKind(bson.D{}))
}

func TestStageColor(t *testing.T) {
	t.Parallel()

	// every modelled stage kind gets a colour of its own group
	assert.NotEqual(t, fallbackColor, stageColor("$match"))
	assert.NotEqual(t, fallbackColor, stageColor("$lookup"))
	assert.NotEqual(t, fallbackColor, stageColor("$merge"))

	// unknown kinds, e.g. from Custom stages, fall back to grey
	assert.Equal(t, fallbackColor, stageColor("$sample"))
}
