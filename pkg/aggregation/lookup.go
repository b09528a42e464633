package aggregation

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FieldBinding names the local field a sub-pipeline lookup binds, and the
// variable the sub-pipeline sees it as.
type FieldBinding struct {
	// Ref is the field path in the enclosing document.
	Ref string
	// Alias is the variable name bound inside the sub-pipeline, referenced
	// there as "$$<alias>".
	Alias string
}

// Bind binds a field under its own name.
func Bind(field string) FieldBinding {
	return FieldBinding{Ref: field, Alias: field}
}

// BindAs binds the field at path ref under the given alias.
func BindAs(ref, alias string) FieldBinding {
	return FieldBinding{Ref: ref, Alias: alias}
}

// CustomLookupSpec carries the parameters of a $lookup built around a
// sub-pipeline rather than a localField/foreignField pair.
type CustomLookupSpec struct {
	// From is the collection to join with.
	From string
	// LocalField is the binding made visible to the sub-pipeline.
	LocalField FieldBinding
	// Match, when set, is an aggregation expression the joined documents
	// must satisfy. It is wrapped in $expr inside a leading $match stage.
	Match any
	// Projection, when set, becomes a $project stage after the match.
	Projection any
	// As names the output array field on the enclosing document.
	As string
}

// Lookup appends a plain equality $lookup stage.
func (b *Builder) Lookup(from, localField, foreignField, as string) *Builder {
	return b.stage(stageLookup, bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	})
}

// CustomLookup appends a $lookup stage joining through a sub-pipeline. The
// local field is exposed to the sub-pipeline via a single let binding, and
// the sub-pipeline holds the optional match followed by the optional
// projection.
func (b *Builder) CustomLookup(spec CustomLookupSpec) *Builder {
	return b.append(customLookupStage(spec))
}

// CustomUnwindLookup appends the same $lookup as CustomLookup, immediately
// followed by an $unwind of the output field with null and empty arrays
// preserved. Useful when the join is known to produce at most one document.
func (b *Builder) CustomUnwindLookup(spec CustomLookupSpec) *Builder {
	b.append(customLookupStage(spec))

	return b.Unwind("$"+spec.As, true)
}

func customLookupStage(spec CustomLookupSpec) bson.D {
	sub := mongo.Pipeline{}
	if spec.Match != nil {
		sub = append(sub, bson.D{
			{Key: stageMatch, Value: bson.D{{Key: "$expr", Value: spec.Match}}},
		})
	}

	if spec.Projection != nil {
		sub = append(sub, bson.D{{Key: stageProject, Value: spec.Projection}})
	}

	return bson.D{{Key: stageLookup, Value: bson.D{
		{Key: "from", Value: spec.From},
		{Key: "let", Value: bson.D{{Key: spec.LocalField.Alias, Value: "$" + spec.LocalField.Ref}}},
		{Key: "pipeline", Value: sub},
		{Key: "as", Value: spec.As},
	}}}
}
