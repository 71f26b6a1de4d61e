package ctx

import (
	"context"
	"time"

	log "github.com/gaslex/goapi/base/log"
)

// Ctx bundles a context with the logger that carries its request fields
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithLogger replaces the logger while keeping the context
func WithLogger(parent Ctx, logger log.Logger) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  logger,
	}
}

// Detach keeps the logger of parent but drops its deadline and cancellation,
// for work that must outlive the request that started it.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  parent.Logger,
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}
