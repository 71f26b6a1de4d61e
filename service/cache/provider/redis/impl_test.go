package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/service/cache/provider"
	"github.com/gaslex/goapi/service/redis"
	mockRedis "github.com/gaslex/goapi/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "ads:list"
	v := []byte("[]")

	ts.redis.On("Set", mockCtx, k, v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
}

func (ts *testsuite) TestGet() {
	k := "ads:list"
	v := []byte("[]")

	ts.redis.On("Get", mockCtx, k).Return(nil, redis.ErrNotFound).Once()
	res, _, err := ts.im.Get(mockCtx, k)
	ts.Nil(res)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(3, nil).Once()
	res, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.Equal(3*time.Second, ttl)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(-1, nil).Once()
	_, ttl, err = ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	k := "ads:list"
	ts.redis.On("Del", mockCtx, k).Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, k))

	errBoom := errors.New("boom")
	ts.redis.On("Del", mockCtx, k).Return(0, errBoom).Once()
	ts.Equal(errBoom, ts.im.Del(mockCtx, k))
}
