package aggregation

import "github.com/pkg/errors"

var (
	// ErrNoExecutor is returned by Execute when the builder was created
	// without an executor binding.
	ErrNoExecutor = errors.New("no executor configured")
)
