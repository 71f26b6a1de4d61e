package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/service/cache"
	"github.com/gaslex/goapi/service/cache/provider"
)

var (
	cacheMiddlewareCache provider.Provider

	cacheMiddlewarePfx = "httpCacheMiddleware"

	once = sync.Once{}
)

// SetupCache sets the provider CacheHttp stores responses in
func SetupCache(p provider.Provider) {
	once.Do(func() {
		cacheMiddlewareCache = p
	})
}

// Response is a cached response
type Response struct {
	Status int
	Value  []byte
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves successful responses from the cache for ttl, keyed by url
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareCache == nil {
		panic("need SetupCache before using CacheHttp")
	}

	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: cacheMiddlewareCache,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet || strings.Contains(req.Header.Get("Cache-Control"), "no-cache") {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(req.URL)
			key := generateKey(req.URL.String())

			cached := Response{}
			if err := cacheService.Get(ctx, key, &cached); err == nil {
				for k, v := range cached.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().Header().Set("X-Cache", "hit")
				c.Response().WriteHeader(cached.Status)
				_, err := c.Response().Write(cached.Value)
				return err
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("failed to cacheService.Get")
			}

			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer, statusCode: http.StatusOK}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode >= 400 {
				return nil
			}
			res := Response{
				Status: writer.statusCode,
				Value:  resBody.Bytes(),
				Header: writer.Header().Clone(),
			}
			if err := cacheService.Set(ctx, key, res); err != nil {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("failed to cacheService.Set")
			}
			return nil
		}
	}
}
