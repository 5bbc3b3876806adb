package sync

import (
	"fmt"
	"iter"
	"slices"

	"github.com/iudanet/drivesync/internal/models"
)

// VersionMapper yields the three-way comparisons of one sync pass.
// Iteration must be finite, deterministic and free of side effects, so that a
// pass cut short by the action budget sees the same sequence next time.
type VersionMapper[T models.Version] interface {
	All() iter.Seq2[string, ThreeWayComparison[T]]
	Len() int
}

// Mapper is the default VersionMapper. It joins original, client and server
// versions by path and yields comparisons in ascending path order.
type Mapper[T models.Version] struct {
	comparisons []ThreeWayComparison[T]
}

// NewVersionMapper indexes the three version sets by path. A path reported
// twice on one side is rejected with ErrDuplicatePath.
func NewVersionMapper[T models.Version](original, client, server []T) (*Mapper[T], error) {
	originals, err := index("original", original)
	if err != nil {
		return nil, err
	}
	clients, err := index("client", client)
	if err != nil {
		return nil, err
	}
	servers, err := index("server", server)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(originals)+len(clients)+len(servers))
	for _, m := range []map[string]*T{originals, clients, servers} {
		for p := range m {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	comparisons := make([]ThreeWayComparison[T], 0, len(paths))
	for _, p := range paths {
		comparisons = append(comparisons, NewThreeWayComparison(p, originals[p], clients[p], servers[p]))
	}

	return &Mapper[T]{comparisons: comparisons}, nil
}

// All yields (path, comparison) pairs in ascending path order.
func (m *Mapper[T]) All() iter.Seq2[string, ThreeWayComparison[T]] {
	return func(yield func(string, ThreeWayComparison[T]) bool) {
		for _, c := range m.comparisons {
			if !yield(c.Path, c) {
				return
			}
		}
	}
}

// Len returns the number of mapped paths.
func (m *Mapper[T]) Len() int {
	return len(m.comparisons)
}
