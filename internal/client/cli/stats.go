package cli

import (
	"context"
	"fmt"
)

// Stats prints the aggregate dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.health.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Clients:   %d (%d active)\n", stats.TotalClients, stats.ActiveClients)
	fmt.Fprintf(a.out, "Users:     %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
	fmt.Fprintf(a.out, "Databases: %d (%d active)\n", stats.TotalDatabases, stats.ActiveDatabases)
	return nil
}
