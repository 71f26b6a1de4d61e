package notify

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain/ad"
)

const (
	scheduleTimeout = 3 * time.Second
	sendTimeout     = 10 * time.Second
)

type async struct {
	targets []Notifier
	pool    *goroutines.Pool
}

// NewAsync fans every notification out to targets on pool. Failures are
// logged and never reach the caller.
func NewAsync(pool *goroutines.Pool, targets ...Notifier) Notifier {
	return &async{targets: targets, pool: pool}
}

func (n *async) NotifyAdSubmitted(c ctx.Ctx, a *ad.Ad) error {
	for _, t := range n.targets {
		target := t
		err := n.pool.ScheduleWithTimeout(scheduleTimeout, func() {
			sendCtx, cancel := ctx.WithTimeout(ctx.Detach(c), sendTimeout)
			defer cancel()
			if err := target.NotifyAdSubmitted(sendCtx, a); err != nil {
				c.WithFields(log.Fields{"err": err, "adId": a.Id}).Warn("failed to notify ad submission")
			}
		})
		if err != nil {
			c.WithFields(log.Fields{"err": err, "adId": a.Id}).Error("failed to ScheduleWithTimeout")
		}
	}
	return nil
}
