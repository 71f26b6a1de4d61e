package redis

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/metrics"
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New wraps a redigo pool
func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  met,
		pool: pool,
	}
}

func prefixOf(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return key
}

func (r *redImpl) connDo(c ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()
	conn, err := r.pool.GetContext(c)
	if err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// release asap so the pool does not have to grow under load
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", prefixOf(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(c, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("GET redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(c, "SET", key, val)
	} else {
		_, err = r.connDo(c, "SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).Error("SET redis failed")
	}
	return err
}

func (r *redImpl) SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	defer r.met.BumpTime("time", r.tags("setnx", key)...).End()

	var err error
	if expire == Forever {
		_, err = redis.String(r.connDo(c, "SET", key, val, "NX"))
	} else {
		_, err = redis.String(r.connDo(c, "SET", key, val, "NX", "PX", int(expire/time.Millisecond)))
	}
	if err == redis.ErrNil {
		return ErrNotSet
	}
	return err
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()

	res, err := redis.Int(r.connDo(c, "DEL", redis.Args{}.AddFlat(ks)...))
	if err != nil {
		c.WithField("err", err).Error("DEL redis failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) Exists(c ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", r.tags("exists", key)...).End()
	res, err := redis.Bool(r.connDo(c, "EXISTS", key))
	if err != nil {
		c.WithField("err", err).Error("EXISTS redis failed")
	}
	return res, err
}

func (r *redImpl) TTL(c ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()
	res, err := redis.Int(r.connDo(c, "TTL", key))
	if err != nil {
		c.WithField("err", err).Error("TTL redis failed")
	}
	return res, err
}

func (r *redImpl) Name() string {
	return "redis." + r.name
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	_, err := r.connDo(c, "PING")
	return err
}
