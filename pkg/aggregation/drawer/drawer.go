package drawer

import (
	"fmt"
	"io"
	"os"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/go-playground/colors.v1" //nolint
)

// DOTDrawer is a drawer that creates a DOT file with the pipeline stage
// graph, one vertex per stage in pipeline order.
type DOTDrawer struct {
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
	}
}

// Draw creates a DOT file with the pipeline stage graph.
func (d *DOTDrawer) Draw(pipeline mongo.Pipeline) error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.DrawTo(pipeline, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

// DrawTo writes the pipeline stage graph to the given writer.
func (d *DOTDrawer) DrawTo(pipeline mongo.Pipeline, w io.Writer) error {
	stageGraph, err := buildStageGraph(pipeline)
	if err != nil {
		return err
	}

	err = dot(stageGraph, w)
	if err != nil {
		return errors.Wrap(err, "unable to render stage graph")
	}

	return nil
}

func buildStageGraph(pipeline mongo.Pipeline) (graph.Graph[string, string], error) {
	stageGraph := graph.New(graph.StringHash, graph.Directed())

	names := lo.Map(pipeline, func(stage bson.D, idx int) string {
		return fmt.Sprintf("%d %s", idx, stageKind(stage))
	})

	for idx, name := range names {
		err := stageGraph.AddVertex(name,
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("fillcolor", stageColor(stageKind(pipeline[idx]))),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add vertex %s", name)
		}
	}

	for idx := 1; idx < len(names); idx++ {
		err := stageGraph.AddEdge(names[idx-1], names[idx])
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add edge from %s to %s", names[idx-1], names[idx])
		}
	}

	return stageGraph, nil
}

func stageKind(stage bson.D) string {
	if len(stage) == 0 {
		return "(empty)"
	}

	return stage[0].Key
}

const fallbackColor = "#d3d3d3"

// stageColor groups stage kinds by what they do to the stream: green filters,
// blue reshapes, purple joins, red writes out.
func stageColor(kind string) string {
	switch kind {
	case "$match":
		return hexColor(130, 224, 170)
	case "$limit", "$skip", "$count":
		return hexColor(171, 235, 198)
	case "$group", "$facet", "$sort":
		return hexColor(133, 193, 233)
	case "$project", "$set", "$unset", "$addFields":
		return hexColor(174, 214, 241)
	case "$lookup", "$unwind", "$unionWith":
		return hexColor(210, 180, 222)
	case "$out", "$merge":
		return hexColor(241, 148, 138)
	default:
		return fallbackColor
	}
}

func hexColor(red, green, blue uint8) string {
	rgb, err := colors.RGB(red, green, blue) //nolint
	if err != nil {
		return fallbackColor
	}

	return rgb.ToHEX().String()
}
