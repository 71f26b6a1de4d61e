package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/gaslex/goapi/base/ctx"
)

type stubCheck struct{ err error }

func (s stubCheck) Check(ctx.Ctx) error { return s.err }

func serve(err error) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, stubCheck{err})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealth(t *testing.T) {
	req := require.New(t)
	rec := serve(nil)
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":"ok","status":"success"}`, rec.Body.String())

	rec = serve(errors.New("mongo: timeout"))
	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.JSONEq(`{"data":"mongo: timeout","status":"fail"}`, rec.Body.String())
}
