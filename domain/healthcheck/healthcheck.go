package healthcheck

import (
	"github.com/gaslex/goapi/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}

// Pinger is one dependency checked by the health check
type Pinger interface {
	Name() string
	Ping(c ctx.Ctx) error
}
