package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	hcdomain "github.com/gaslex/goapi/domain/healthcheck"
)

type impl struct {
	pingers []hcdomain.Pinger
	timeout time.Duration
}

// New creates a health check over pingers, each pinged with timeout
func New(timeout time.Duration, pingers ...hcdomain.Pinger) hcdomain.HealthCheckUsecase {
	return &impl{
		pingers: pingers,
		timeout: timeout,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	for _, p := range im.pingers {
		c, cancel := ctx.WithTimeout(context, im.timeout)
		err := p.Ping(c)
		cancel()
		if err != nil {
			context.WithFields(log.Fields{"err": err, "pinger": p.Name()}).Error("ping error")
			return xerrors.Errorf("%s: %w", p.Name(), err)
		}
	}
	return nil
}
