package cli

import (
	"context"
	"fmt"
)

// RunSync выполняет проход синхронизации и печатает отчет
func (c *Cli) RunSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Complete() {
		c.io.Printf("%s Synchronization completed successfully!\n", c.mark(true))
	} else {
		c.io.Printf("%s Synchronization is incomplete\n", c.mark(false))
	}
	c.io.Println()
	c.io.Printf("Directories synced: %d\n", result.Directories)
	c.io.Printf("Uploaded:           %d files\n", result.Uploaded)
	c.io.Printf("Removed locally:    %d\n", result.Removed)
	c.io.Printf("Acknowledged:       %d\n", result.Acknowledged)
	if result.Renamed > 0 {
		c.io.Printf("Conflicts renamed:  %d\n", result.Renamed)
	}

	if len(result.Pending) > 0 {
		c.io.Println()
		c.io.Printf("Pending actions (%d):\n", len(result.Pending))
		for _, p := range result.Pending {
			if p.Reason != "" {
				c.io.Printf("  %-8s %s (%s)\n", p.Action, p.Path, p.Reason)
				continue
			}
			c.io.Printf("  %-8s %s\n", p.Action, p.Path)
		}
	}
	if result.Deferred {
		c.io.Println()
		c.io.Println("The server deferred part of the changes. Run 'drivesync sync' again.")
	}

	return nil
}
