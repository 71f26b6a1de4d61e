package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain/keys"
	"github.com/gaslex/goapi/service/cache/provider"
	"github.com/gaslex/goapi/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache provider.Provider
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	s.cache = primitive.NewPrimitive("httpCacheMiddleware", 1)
	SetupCache(s.cache)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/networks", nil)
	rec := httptest.NewRecorder()
	res := "Hello, World"
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	}

	c := e.NewContext(req, rec)
	cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
	c.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h)(c)) {
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(res, rec.Body.String())
	}

	req2 := httptest.NewRequest(http.MethodGet, "/networks", nil)
	rec2 := httptest.NewRecorder()
	res2 := "Hello, again"
	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, res2)
	}
	c2 := e.NewContext(req2, rec2)
	c2.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h2)(c2)) {
		s.Equal(http.StatusOK, rec2.Code)
		s.Equal(res, rec2.Body.String())
		s.Equal("hit", rec2.Header().Get("X-Cache"))
	}

	key := generateKey(req.URL.String())
	_, _, err := s.cache.Get(cont, keys.RedisKey("httpCacheMiddleware", key))
	s.Nil(err)
}

func (s *cacheMiddlewareSuite) TestErrorsAreNotCached() {
	e := echo.New()
	cont := ctx.Background()

	fail := func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "down")
	}
	req := httptest.NewRequest(http.MethodGet, "/flaky", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("ctx", cont)
	s.NoError(CacheHttp(30 * time.Second)(fail)(c))

	_, _, err := s.cache.Get(cont, keys.RedisKey("httpCacheMiddleware", generateKey(req.URL.String())))
	s.Equal(provider.ErrNotFound, err)
}

func (s *cacheMiddlewareSuite) TestBypass() {
	e := echo.New()
	cont := ctx.Background()
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "fresh")
	}

	post := httptest.NewRequest(http.MethodPost, "/bypass", nil)
	c := e.NewContext(post, httptest.NewRecorder())
	c.Set("ctx", cont)
	s.NoError(CacheHttp(30 * time.Second)(h)(c))

	for i := 0; i < 2; i++ {
		get := httptest.NewRequest(http.MethodGet, "/bypass", nil)
		get.Header.Set("Cache-Control", "no-cache")
		c := e.NewContext(get, httptest.NewRecorder())
		c.Set("ctx", cont)
		s.NoError(CacheHttp(30 * time.Second)(h)(c))
	}
	s.Equal(3, calls)
}

func TestSortURLParams(t *testing.T) {
	u, _ := url.Parse("/x?b=2&a=1&a=0")
	sortURLParams(u)
	if u.RawQuery != "a=0&a=1&b=2" {
		t.Errorf("sortURLParams() = %s", u.RawQuery)
	}
}
