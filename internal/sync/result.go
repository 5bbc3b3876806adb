package sync

import "github.com/iudanet/drivesync/internal/models"

// IntermediateSyncResult accumulates the actions of one sync pass. It is owned
// by a single Sync call and handed to the caller when the pass ends.
type IntermediateSyncResult[T models.Version] struct {
	serverActions []Action[T]
	clientActions []Action[T]
	deferred      bool
}

// NewIntermediateSyncResult creates an empty result.
func NewIntermediateSyncResult[T models.Version]() *IntermediateSyncResult[T] {
	return &IntermediateSyncResult[T]{}
}

// AddServerAction appends a server-directed action and returns its
// contribution to the non-trivial action count.
func (r *IntermediateSyncResult[T]) AddServerAction(a Action[T]) int {
	r.serverActions = append(r.serverActions, a)
	return nonTrivial(a)
}

// AddClientAction appends a client-directed action and returns its
// contribution to the non-trivial action count.
func (r *IntermediateSyncResult[T]) AddClientAction(a Action[T]) int {
	r.clientActions = append(r.clientActions, a)
	return nonTrivial(a)
}

// ServerActions returns the server-directed actions in append order.
func (r *IntermediateSyncResult[T]) ServerActions() []Action[T] {
	return r.serverActions
}

// ClientActions returns the client-directed actions in append order.
func (r *IntermediateSyncResult[T]) ClientActions() []Action[T] {
	return r.clientActions
}

// Deferred reports whether the pass stopped at the action budget and left
// paths for a later pass.
func (r *IntermediateSyncResult[T]) Deferred() bool {
	return r.deferred
}

// Len returns the total number of recorded actions.
func (r *IntermediateSyncResult[T]) Len() int {
	return len(r.serverActions) + len(r.clientActions)
}

func nonTrivial[T models.Version](a Action[T]) int {
	if a.IsTrivial() {
		return 0
	}
	return 1
}
