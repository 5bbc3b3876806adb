package sync

import "github.com/iudanet/drivesync/internal/models"

// ActionType is the kind of instruction produced for a client or the server.
type ActionType string

const (
	// ActionAcknowledge tells the receiver to record Version as synchronized
	// (NewVersion, or nothing when NewVersion is nil). It changes no content.
	ActionAcknowledge ActionType = "acknowledge"
	// ActionEdit renames or moves Version to NewVersion.
	ActionEdit ActionType = "edit"
	// ActionDownload fetches NewVersion from the server.
	ActionDownload ActionType = "download"
	// ActionUpload sends NewVersion to the server.
	ActionUpload ActionType = "upload"
	// ActionRemove deletes Version.
	ActionRemove ActionType = "remove"
	// ActionSync synchronizes the contents of a directory.
	ActionSync ActionType = "sync"
	// ActionError reports a version that cannot be synchronized.
	ActionError ActionType = "error"
)

// Well-known action parameter names.
const (
	ParamConflict = "conflict"
	ParamReason   = "reason"
	ParamError    = "error"
	ParamQuiet    = "quiet"
)

// Action is a single synchronization instruction.
type Action[T models.Version] struct {
	Version    *T
	NewVersion *T
	Parameters map[string]string
	Type       ActionType
}

// NewAction creates an action of type typ.
func NewAction[T models.Version](typ ActionType, version, newVersion *T) Action[T] {
	return Action[T]{
		Type:       typ,
		Version:    version,
		NewVersion: newVersion,
	}
}

// With returns a copy of a with parameter key set to value.
func (a Action[T]) With(key, value string) Action[T] {
	params := make(map[string]string, len(a.Parameters)+1)
	for k, v := range a.Parameters {
		params[k] = v
	}
	params[key] = value
	a.Parameters = params
	return a
}

// IsTrivial reports whether the action carries no state-changing effect and
// therefore does not count against the per-pass action budget.
func (a Action[T]) IsTrivial() bool {
	return a.Type == ActionAcknowledge
}

// Path returns the path the action applies to.
func (a Action[T]) Path() string {
	if a.Version != nil {
		return (*a.Version).Path()
	}
	if a.NewVersion != nil {
		return (*a.NewVersion).Path()
	}
	return ""
}
