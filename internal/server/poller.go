package server

import (
	"context"

	"github.com/elevenpool/league-console/internal/poller"
)

// Poller is the background dashboard refresher as seen by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// statusSource feeds /ready; a console without a poller reports no status.
func statusSource(plr Poller) func() poller.Status {
	if plr == nil {
		return nil
	}
	return plr.Status
}
