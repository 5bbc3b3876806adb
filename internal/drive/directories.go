package drive

import (
	"context"
	"fmt"

	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/internal/validation"
)

// DirectoryProcessor decides the actions for directories. Directory contents
// are merged by a following file sync pass, so most outcomes are SYNC actions.
type DirectoryProcessor struct {
	session    *sync.Session
	warn       *sync.WarnLogger
	maxActions int
}

// NewDirectoryProcessor creates a directory processor.
func NewDirectoryProcessor(session *sync.Session, warn *sync.WarnLogger, maxActions int) *DirectoryProcessor {
	return &DirectoryProcessor{
		session:    session,
		warn:       warn,
		maxActions: maxActions,
	}
}

// MaxActions returns the configured directory action budget.
func (p *DirectoryProcessor) MaxActions() int {
	return p.maxActions
}

// ProcessServerChange mirrors a server-side directory change to the client.
func (p *DirectoryProcessor) ProcessServerChange(ctx context.Context, result *sync.IntermediateSyncResult[models.DirectoryVersion], cmp sync.ThreeWayComparison[models.DirectoryVersion]) (int, error) {
	switch cmp.ServerChange {
	case sync.ChangeNew, sync.ChangeModified:
		return result.AddClientAction(sync.NewAction(sync.ActionSync, cmp.Client, cmp.Server)), nil
	case sync.ChangeDeleted:
		return result.AddClientAction(sync.NewAction(sync.ActionRemove, cmp.Client, nil)), nil
	default:
		return 0, fmt.Errorf("unexpected server change %s", cmp.ServerChange)
	}
}

// ProcessClientChange propagates a client-side directory change.
func (p *DirectoryProcessor) ProcessClientChange(ctx context.Context, result *sync.IntermediateSyncResult[models.DirectoryVersion], cmp sync.ThreeWayComparison[models.DirectoryVersion]) (int, error) {
	switch cmp.ClientChange {
	case sync.ChangeNew, sync.ChangeModified:
		if n, invalid := p.rejectInvalid(ctx, result, *cmp.Client); invalid {
			return n, nil
		}
		n := result.AddServerAction(sync.NewAction(sync.ActionSync, cmp.Server, cmp.Client))
		n += result.AddClientAction(sync.NewAction(sync.ActionSync, cmp.Client, cmp.Server))
		return n, nil
	case sync.ChangeDeleted:
		n := result.AddServerAction(sync.NewAction(sync.ActionRemove, cmp.Server, nil))
		n += result.AddClientAction(sync.NewAction(sync.ActionAcknowledge, cmp.Original, nil))
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected client change %s", cmp.ClientChange)
	}
}

// ProcessConflictingChange resolves a directory changed on both sides.
func (p *DirectoryProcessor) ProcessConflictingChange(ctx context.Context, result *sync.IntermediateSyncResult[models.DirectoryVersion], cmp sync.ThreeWayComparison[models.DirectoryVersion]) (int, error) {
	switch {
	case cmp.ClientServerEqual():
		return result.AddClientAction(sync.NewAction(sync.ActionAcknowledge, cmp.Original, cmp.Client)), nil

	case cmp.ClientChange == sync.ChangeDeleted:
		return result.AddClientAction(sync.NewAction(sync.ActionSync, nil, cmp.Server)), nil

	case cmp.ServerChange == sync.ChangeDeleted:
		if n, invalid := p.rejectInvalid(ctx, result, *cmp.Client); invalid {
			return n, nil
		}
		n := result.AddServerAction(sync.NewAction(sync.ActionSync, nil, cmp.Client))
		n += result.AddClientAction(sync.NewAction(sync.ActionSync, cmp.Client, cmp.Client))
		return n, nil

	default:
		// содержимое сливается проходом синхронизации файлов
		return result.AddClientAction(sync.NewAction(sync.ActionSync, cmp.Client, cmp.Server)), nil
	}
}

func (p *DirectoryProcessor) rejectInvalid(ctx context.Context, result *sync.IntermediateSyncResult[models.DirectoryVersion], version models.DirectoryVersion) (int, bool) {
	err := validation.ValidateDirPath(version.DirPath)
	if err == nil {
		return 0, false
	}

	syncErr := sync.ErrInvalidName.Withf("%s", version.DirPath).Wrap(err)
	level := p.warn.Warn(ctx, p.session, "Invalid directory path", version, syncErr)
	observeWarning(level)

	action := sync.NewAction(sync.ActionError, &version, nil).
		With(sync.ParamError, syncErr.CodeString()).
		With(sync.ParamReason, err.Error()).
		With(sync.ParamQuiet, quiet(level))
	return result.AddClientAction(action), true
}
