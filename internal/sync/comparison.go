package sync

import "github.com/iudanet/drivesync/internal/models"

// ThreeWayComparison holds, for one path, the version known at the last sync
// (Original), the version reported by the client (Client) and the version
// held by the server (Server), together with the derived changes on each side.
// A nil version is absent on that side.
type ThreeWayComparison[T models.Version] struct {
	Original     *T
	Client       *T
	Server       *T
	Path         string
	ClientChange Change
	ServerChange Change
}

// NewThreeWayComparison builds a comparison and derives both changes.
func NewThreeWayComparison[T models.Version](path string, original, client, server *T) ThreeWayComparison[T] {
	return ThreeWayComparison[T]{
		Path:         path,
		Original:     original,
		Client:       client,
		Server:       server,
		ClientChange: ChangeOf(original, client),
		ServerChange: ChangeOf(original, server),
	}
}

// ClientServerEqual reports whether client and server hold content-identical
// versions, or both are absent.
func (c ThreeWayComparison[T]) ClientServerEqual() bool {
	if c.Client == nil || c.Server == nil {
		return c.Client == nil && c.Server == nil
	}
	return (*c.Client).Checksum() == (*c.Server).Checksum()
}
