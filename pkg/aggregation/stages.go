package aggregation

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	stageMatch     = "$match"
	stageGroup     = "$group"
	stageSort      = "$sort"
	stageLimit     = "$limit"
	stageSkip      = "$skip"
	stageSet       = "$set"
	stageUnset     = "$unset"
	stageProject   = "$project"
	stageCount     = "$count"
	stageFacet     = "$facet"
	stageOut       = "$out"
	stageMerge     = "$merge"
	stageLookup    = "$lookup"
	stageUnwind    = "$unwind"
	stageAddFields = "$addFields"
	stageUnionWith = "$unionWith"
)

// Default $merge behaviours, applied when MergeSpec leaves them empty.
const (
	MergeWhenMatched    = "merge"
	MergeWhenNotMatched = "insert"
)

// Match appends a $match stage with the given filter.
func (b *Builder) Match(filter any) *Builder {
	return b.stage(stageMatch, filter)
}

// Group appends a $group stage with the given grouping specification.
func (b *Builder) Group(spec any) *Builder {
	return b.stage(stageGroup, spec)
}

// Sort appends a $sort stage.
func (b *Builder) Sort(spec any) *Builder {
	return b.stage(stageSort, spec)
}

// Limit appends a $limit stage.
func (b *Builder) Limit(n int64) *Builder {
	return b.stage(stageLimit, n)
}

// Skip appends a $skip stage.
func (b *Builder) Skip(n int64) *Builder {
	return b.stage(stageSkip, n)
}

// Paginate appends a $skip stage followed by a $limit stage for the given
// page size and 1-indexed page number. A page number of zero or below yields
// a negative skip, which is passed through for the database to reject like
// any other malformed payload.
func (b *Builder) Paginate(limit, page int64) *Builder {
	return b.Skip(limit * (page - 1)).Limit(limit)
}

// Set appends a $set stage.
func (b *Builder) Set(fields any) *Builder {
	return b.stage(stageSet, fields)
}

// AddFields appends an $addFields stage.
func (b *Builder) AddFields(fields any) *Builder {
	return b.stage(stageAddFields, fields)
}

// Unset appends an $unset stage removing the given fields. A single field
// uses the string form of the stage, several fields the array form.
func (b *Builder) Unset(fields ...string) *Builder {
	if len(fields) == 1 {
		return b.stage(stageUnset, fields[0])
	}

	return b.stage(stageUnset, bson.A(lo.ToAnySlice(fields)))
}

// Project appends a $project stage.
func (b *Builder) Project(spec any) *Builder {
	return b.stage(stageProject, spec)
}

// Count appends a $count stage writing the document count to the given
// field.
func (b *Builder) Count(field string) *Builder {
	return b.stage(stageCount, field)
}

// Facet appends a $facet stage.
func (b *Builder) Facet(spec any) *Builder {
	return b.stage(stageFacet, spec)
}

// UnionWith appends a $unionWith stage. With a nil pipeline the short string
// form is used, otherwise the documents of the given collection are run
// through the sub-pipeline before being unioned in.
func (b *Builder) UnionWith(coll string, pipeline mongo.Pipeline) *Builder {
	if pipeline == nil {
		return b.stage(stageUnionWith, coll)
	}

	return b.stage(stageUnionWith, bson.D{
		{Key: "coll", Value: coll},
		{Key: "pipeline", Value: pipeline},
	})
}

// Out appends an $out stage writing the results to a collection in the
// current database.
func (b *Builder) Out(coll string) *Builder {
	return b.stage(stageOut, coll)
}

// OutTo appends an $out stage writing the results to a collection in another
// database.
func (b *Builder) OutTo(db, coll string) *Builder {
	return b.stage(stageOut, bson.D{
		{Key: "db", Value: db},
		{Key: "coll", Value: coll},
	})
}

// MergeCollection targets a collection in another database for Merge.
type MergeCollection struct {
	DB   string
	Coll string
}

// MergeSpec carries the parameters of a $merge stage. Into is either a
// collection name or a MergeCollection. On, when set, names the field(s)
// the merge matches on. Empty behaviours fall back to MergeWhenMatched and
// MergeWhenNotMatched.
type MergeSpec struct {
	Into           any
	On             any
	WhenMatched    string
	WhenNotMatched string
}

// Merge appends a $merge stage. The on key is omitted entirely when unset —
// the stage is then equivalent to one built without it.
func (b *Builder) Merge(spec MergeSpec) *Builder {
	into := spec.Into
	if coll, ok := into.(MergeCollection); ok {
		into = bson.D{
			{Key: "db", Value: coll.DB},
			{Key: "coll", Value: coll.Coll},
		}
	}

	matched := spec.WhenMatched
	if matched == "" {
		matched = MergeWhenMatched
	}

	notMatched := spec.WhenNotMatched
	if notMatched == "" {
		notMatched = MergeWhenNotMatched
	}

	payload := bson.D{{Key: "into", Value: into}}
	if spec.On != nil {
		payload = append(payload, bson.E{Key: "on", Value: spec.On})
	}

	payload = append(payload,
		bson.E{Key: "whenMatched", Value: matched},
		bson.E{Key: "whenNotMatched", Value: notMatched},
	)

	return b.stage(stageMerge, payload)
}

// Unwind appends an $unwind stage deconstructing the array at the given
// path. With preserveNullAndEmpty set, documents whose path is null, absent
// or an empty array are kept instead of dropped.
func (b *Builder) Unwind(path string, preserveNullAndEmpty bool) *Builder {
	return b.stage(stageUnwind, bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: preserveNullAndEmpty},
	})
}

// Custom appends a caller-supplied stage verbatim, with no shape checking.
// It is the escape hatch for stage kinds the builder does not model.
func (b *Builder) Custom(stage bson.D) *Builder {
	return b.append(stage)
}
