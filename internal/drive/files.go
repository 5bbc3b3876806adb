package drive

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/internal/validation"
)

// conflictChecksumLen is the number of checksum characters in a conflict name.
const conflictChecksumLen = 8

// FileProcessor decides the actions for the files of one directory.
type FileProcessor struct {
	session    *sync.Session
	warn       *sync.WarnLogger
	dirPath    string
	maxActions int
}

// NewFileProcessor creates a processor for the files in dirPath.
func NewFileProcessor(session *sync.Session, warn *sync.WarnLogger, dirPath string, maxActions int) *FileProcessor {
	return &FileProcessor{
		session:    session,
		warn:       warn,
		dirPath:    dirPath,
		maxActions: maxActions,
	}
}

// MaxActions returns the configured file action budget.
func (p *FileProcessor) MaxActions() int {
	return p.maxActions
}

// ProcessServerChange mirrors a server-side change to the client.
func (p *FileProcessor) ProcessServerChange(ctx context.Context, result *sync.IntermediateSyncResult[models.FileVersion], cmp sync.ThreeWayComparison[models.FileVersion]) (int, error) {
	switch cmp.ServerChange {
	case sync.ChangeNew, sync.ChangeModified:
		return result.AddClientAction(sync.NewAction(sync.ActionDownload, cmp.Client, cmp.Server)), nil
	case sync.ChangeDeleted:
		return result.AddClientAction(sync.NewAction(sync.ActionRemove, cmp.Client, nil)), nil
	default:
		return 0, fmt.Errorf("unexpected server change %s", cmp.ServerChange)
	}
}

// ProcessClientChange propagates a client-side change to the server.
func (p *FileProcessor) ProcessClientChange(ctx context.Context, result *sync.IntermediateSyncResult[models.FileVersion], cmp sync.ThreeWayComparison[models.FileVersion]) (int, error) {
	switch cmp.ClientChange {
	case sync.ChangeNew, sync.ChangeModified:
		if n, invalid := p.rejectInvalid(ctx, result, *cmp.Client); invalid {
			return n, nil
		}
		return result.AddClientAction(sync.NewAction(sync.ActionUpload, cmp.Server, cmp.Client)), nil
	case sync.ChangeDeleted:
		n := result.AddServerAction(sync.NewAction(sync.ActionRemove, cmp.Server, nil))
		n += result.AddClientAction(sync.NewAction(sync.ActionAcknowledge, cmp.Original, nil))
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected client change %s", cmp.ClientChange)
	}
}

// ProcessConflictingChange resolves a file changed on both sides. When both
// contents differ the server keeps the name and the client copy is renamed to
// a conflict name derived from its checksum.
func (p *FileProcessor) ProcessConflictingChange(ctx context.Context, result *sync.IntermediateSyncResult[models.FileVersion], cmp sync.ThreeWayComparison[models.FileVersion]) (int, error) {
	switch {
	case cmp.ClientServerEqual():
		return result.AddClientAction(sync.NewAction(sync.ActionAcknowledge, cmp.Original, cmp.Client)), nil

	case cmp.ClientChange == sync.ChangeDeleted:
		return result.AddClientAction(sync.NewAction(sync.ActionDownload, nil, cmp.Server)), nil

	case cmp.ServerChange == sync.ChangeDeleted:
		if n, invalid := p.rejectInvalid(ctx, result, *cmp.Client); invalid {
			return n, nil
		}
		return result.AddClientAction(sync.NewAction(sync.ActionUpload, nil, cmp.Client)), nil

	default:
		renamed := models.FileVersion{
			Name: ConflictName(cmp.Client.Name, cmp.Client.MD5),
			MD5:  cmp.Client.MD5,
		}
		p.session.Trace("Conflicting file versions, renaming client copy",
			"dir", p.dirPath,
			"name", cmp.Path,
			"conflict_name", renamed.Name)

		n := result.AddClientAction(sync.NewAction(sync.ActionEdit, cmp.Client, &renamed).
			With(sync.ParamConflict, "true"))
		n += result.AddClientAction(sync.NewAction(sync.ActionDownload, nil, cmp.Server).
			With(sync.ParamConflict, "true"))
		return n, nil
	}
}

// rejectInvalid appends an ERROR action when the client version's name cannot
// be synchronized.
func (p *FileProcessor) rejectInvalid(ctx context.Context, result *sync.IntermediateSyncResult[models.FileVersion], version models.FileVersion) (int, bool) {
	err := validation.ValidateFileName(version.Name)
	if err == nil {
		return 0, false
	}

	syncErr := sync.ErrInvalidName.Withf("%s", version.Name).Wrap(err)
	level := p.warn.Warn(ctx, p.session, "Invalid file name", version, syncErr)
	observeWarning(level)

	action := sync.NewAction(sync.ActionError, &version, nil).
		With(sync.ParamError, syncErr.CodeString()).
		With(sync.ParamReason, err.Error()).
		With(sync.ParamQuiet, quiet(level))
	return result.AddClientAction(action), true
}

// ConflictName returns the name of a renamed conflicting copy, e.g.
// "report (conflict 0cc175b9).txt". The result depends only on its arguments.
func ConflictName(name, checksum string) string {
	ext := path.Ext(name)
	if ext == name {
		ext = "" // ".profile"
	}
	base := strings.TrimSuffix(name, ext)

	if len(checksum) > conflictChecksumLen {
		checksum = checksum[:conflictChecksumLen]
	}
	return fmt.Sprintf("%s (conflict %s)%s", base, checksum, ext)
}
