package drawer

import "go.mongodb.org/mongo-driver/mongo"

// Drawer is an interface that defines the methods for drawing an assembled
// pipeline.
type Drawer interface {
	// Draw creates a file with the pipeline stage graph.
	Draw(pipeline mongo.Pipeline) error
}
