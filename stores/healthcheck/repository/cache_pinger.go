package repository

import (
	"time"

	"github.com/gaslex/goapi/base/ctx"
	hcdomain "github.com/gaslex/goapi/domain/healthcheck"
	"github.com/gaslex/goapi/domain/keys"
	"github.com/gaslex/goapi/service/cache/provider"
)

type cachePinger struct {
	name  string
	cache provider.Provider
}

// NewCachePinger checks a cache provider with a short lived write
func NewCachePinger(name string, cache provider.Provider) hcdomain.Pinger {
	return &cachePinger{name: name, cache: cache}
}

func (p *cachePinger) Name() string {
	return p.name
}

func (p *cachePinger) Ping(c ctx.Ctx) error {
	if err := p.cache.Set(c, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		c.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
