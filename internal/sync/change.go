package sync

import "github.com/iudanet/drivesync/internal/models"

// Change classifies how a version differs from the previously synchronized one.
type Change int

const (
	// ChangeNone means the version is unchanged since the last sync.
	ChangeNone Change = iota
	// ChangeNew means the version did not exist at the last sync.
	ChangeNew
	// ChangeModified means the checksum differs from the last sync.
	ChangeModified
	// ChangeDeleted means the version existed at the last sync and is gone now.
	ChangeDeleted
)

// String returns the lowercase name of the change.
func (c Change) String() string {
	switch c {
	case ChangeNone:
		return "none"
	case ChangeNew:
		return "new"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// IsNone reports whether c is ChangeNone.
func (c Change) IsNone() bool {
	return c == ChangeNone
}

// ChangeOf сравнивает текущую версию с исходной (последней синхронизированной).
// nil означает отсутствие версии.
func ChangeOf[T models.Version](original, current *T) Change {
	switch {
	case original == nil && current == nil:
		return ChangeNone
	case original == nil:
		return ChangeNew
	case current == nil:
		return ChangeDeleted
	case (*original).Checksum() != (*current).Checksum():
		return ChangeModified
	default:
		return ChangeNone
	}
}
