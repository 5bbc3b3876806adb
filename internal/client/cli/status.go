package cli

import (
	"context"
	"fmt"
	"time"
)

// RunStatus печатает локальные изменения относительно последней синхронизации
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	report, err := c.syncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if report.LastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", report.LastSync.Format(time.RFC3339))
	}
	c.io.Println()

	if len(report.Changes) == 0 {
		c.io.Printf("%s All local changes synchronized with server\n", c.mark(true))
		return nil
	}

	c.io.Printf("%s Local changes: %d\n", c.mark(false), len(report.Changes))
	for _, ch := range report.Changes {
		p := ch.Path
		if ch.Dir && p != "/" {
			p += "/"
		}
		c.io.Printf("  %-8s %s\n", ch.Change, p)
	}
	c.io.Println()
	c.io.Println("Run 'drivesync sync' to synchronize with server.")

	return nil
}
