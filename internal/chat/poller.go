package chat

import (
	"github.com/robfig/cron/v3"

	"medishare-client/internal/logger"
)

// pollSpec re-fetches the conversation every five seconds, a simple
// substitute for push updates.
const pollSpec = "@every 5s"

// Poller drives the periodic refresh of a conversation view. Its
// lifetime is tied to the view: Start on mount, Stop on unmount, so no
// timer outlives the screen that needed it.
type Poller struct {
	cron *cron.Cron
}

// NewPoller schedules refresh on the polling cadence. The callback runs
// on the scheduler goroutine and must do its own error handling.
func NewPoller(refresh func()) (*Poller, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(pollSpec, refresh); err != nil {
		return nil, err
	}
	return &Poller{cron: c}, nil
}

func (p *Poller) Start() {
	logger.L().Debug("chat poller started")
	p.cron.Start()
}

// Stop halts scheduling and waits for an in-flight refresh to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	logger.L().Debug("chat poller stopped")
}
