// Package cli implements the client commands on top of the sync service.
package cli

import (
	"github.com/iudanet/drivesync/internal/client/iocli"
	"github.com/iudanet/drivesync/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	syncService sync.Service
}

func New(io iocli.IO, syncService sync.Service) *Cli {
	return &Cli{
		io:          io,
		syncService: syncService,
	}
}

// mark возвращает отметку результата: символ в терминале, слово в остальных случаях
func (c *Cli) mark(ok bool) string {
	switch {
	case c.io.IsTerminal() && ok:
		return "✓"
	case c.io.IsTerminal():
		return "⚠️ "
	case ok:
		return "[ok]"
	default:
		return "[!]"
	}
}
