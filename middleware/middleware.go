package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	allowOrigin string
}

// InitMiddleware initialize the middleware, allowOrigin defaults to "*"
func InitMiddleware(allowOrigin string) *GoMiddleware {
	if len(allowOrigin) == 0 {
		allowOrigin = "*"
	}
	return &GoMiddleware{allowOrigin: allowOrigin}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, m.allowOrigin)
		h.Set(echo.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
		h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, DELETE, OPTIONS")
		return next(c)
	}
}

// AddContext adds custom context into echo, cancelled with the request
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			base := ctx.WithLogger(ctx.Ctx{Context: c.Request().Context()}, log.Log())
			cont := ctx.WithValue(base, "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}
			if pubkey := c.Get("pubkey"); pubkey != nil {
				fields["pubkey"] = pubkey
			}

			n := res.Status
			switch {
			case n >= 400:
				fields["nextErr"] = err
			default:
			}

			c.Get("ctx").(ctx.Ctx).WithFields(fields).Info("response")
			return nil
		}
	}
}
