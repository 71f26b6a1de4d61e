package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gaslex/goapi/base/ctx"
)

type fakePinger struct {
	name   string
	err    error
	called bool
}

func (p *fakePinger) Name() string { return p.name }

func (p *fakePinger) Ping(c ctx.Ctx) error {
	p.called = true
	if _, ok := c.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return p.err
}

func TestCheck(t *testing.T) {
	req := require.New(t)
	mongo := &fakePinger{name: "mongo"}
	redis := &fakePinger{name: "redis"}
	req.NoError(New(time.Second, mongo, redis).Check(ctx.Background()))
	req.True(mongo.called)
	req.True(redis.called)
}

func TestCheckFailure(t *testing.T) {
	req := require.New(t)
	down := errors.New("connection refused")
	mongo := &fakePinger{name: "mongo", err: down}
	redis := &fakePinger{name: "redis"}

	err := New(time.Second, mongo, redis).Check(ctx.Background())
	req.ErrorIs(err, down)
	req.Contains(err.Error(), "mongo")
	req.False(redis.called)
}
