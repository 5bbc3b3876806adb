// Package sync implements the reconciliation engine of drive synchronization.
//
// A Synchronizer walks the three-way comparisons produced by a VersionMapper,
// dispatches every changed path to a ChangeProcessor and collects the
// resulting actions. The number of non-trivial actions per pass is bounded;
// paths left over are picked up by the next pass because nothing is marked
// as synchronized until the client applies the actions.
package sync

import (
	"context"

	"github.com/iudanet/drivesync/internal/models"
)

//go:generate moq -out processor_mock_test.go . ChangeProcessor

// ChangeProcessor decides the actions for one changed path. Implementations
// append actions to result and return how many non-trivial actions they
// appended (acknowledgements excluded). Returning an error aborts the pass.
type ChangeProcessor[T models.Version] interface {
	// ProcessServerChange handles a path changed only on the server.
	ProcessServerChange(ctx context.Context, result *IntermediateSyncResult[T], cmp ThreeWayComparison[T]) (int, error)

	// ProcessClientChange handles a path changed only on the client.
	ProcessClientChange(ctx context.Context, result *IntermediateSyncResult[T], cmp ThreeWayComparison[T]) (int, error)

	// ProcessConflictingChange handles a path changed on both sides. The
	// resolution must be deterministic for the same pair of checksums.
	ProcessConflictingChange(ctx context.Context, result *IntermediateSyncResult[T], cmp ThreeWayComparison[T]) (int, error)

	// MaxActions returns the ceiling of non-trivial actions per pass.
	MaxActions() int
}

// Synchronizer runs one sync pass. It is not reusable across passes and not
// safe for concurrent use; construct one per pass.
type Synchronizer[T models.Version] struct {
	session   *Session
	mapper    VersionMapper[T]
	processor ChangeProcessor[T]
}

// NewSynchronizer creates a synchronizer for one pass.
func NewSynchronizer[T models.Version](session *Session, mapper VersionMapper[T], processor ChangeProcessor[T]) *Synchronizer[T] {
	return &Synchronizer[T]{
		session:   session,
		mapper:    mapper,
		processor: processor,
	}
}

// Sync processes the mapper's comparisons in order until they are exhausted
// or the non-trivial action count exceeds MaxActions.
func (s *Synchronizer[T]) Sync(ctx context.Context) (*IntermediateSyncResult[T], error) {
	result := NewIntermediateSyncResult[T]()

	maxActions := s.processor.MaxActions()
	if maxActions < 0 {
		return nil, ErrInvalidMaxActions.Withf("%d", maxActions)
	}

	nonTrivialActionCount := 0
	processed := 0
	for path, cmp := range s.mapper.All() {
		n, err := s.dispatch(ctx, result, cmp)
		if err != nil {
			s.session.Trace("Sync pass aborted", "path", path, "error", err)
			return nil, err
		}
		processed++
		nonTrivialActionCount += n

		if nonTrivialActionCount > maxActions {
			// Остальные пути будут обработаны в следующем проходе
			s.session.Trace("Action budget exceeded, deferring remaining paths",
				"max_actions", maxActions,
				"actions", nonTrivialActionCount,
				"processed", processed,
				"total", s.mapper.Len())
			result.deferred = processed < s.mapper.Len()
			break
		}
	}

	s.session.Trace("Sync pass finished",
		"processed", processed,
		"actions", result.Len(),
		"server_actions", len(result.ServerActions()),
		"client_actions", len(result.ClientActions()))

	return result, nil
}

func (s *Synchronizer[T]) dispatch(ctx context.Context, result *IntermediateSyncResult[T], cmp ThreeWayComparison[T]) (int, error) {
	switch {
	case cmp.ClientChange.IsNone() && cmp.ServerChange.IsNone():
		return 0, nil
	case cmp.ClientChange.IsNone():
		return s.processor.ProcessServerChange(ctx, result, cmp)
	case cmp.ServerChange.IsNone():
		return s.processor.ProcessClientChange(ctx, result, cmp)
	default:
		return s.processor.ProcessConflictingChange(ctx, result, cmp)
	}
}
