package executor

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-mongo-pipeline/pkg/aggregation"
)

// Run executes every named builder concurrently and collects their result
// documents by name. The first failing builder cancels the remaining runs
// and its error is returned, wrapped with the builder's name.
func Run(ctx context.Context, builders map[string]*aggregation.Builder) (map[string][]bson.M, error) {
	errGrp, dCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string][]bson.M, len(builders))

	for name, builder := range builders {
		name, builder := name, builder
		errGrp.Go(func() error {
			documents, err := builder.Execute(dCtx)
			if err != nil {
				return errors.Wrap(err, name)
			}

			mu.Lock()
			results[name] = documents
			mu.Unlock()

			return nil
		})
	}

	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
