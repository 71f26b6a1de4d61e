package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/delivery"
	hcdomain "github.com/gaslex/goapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// check
//
//	@Summary		Health check
//	@Description	Pings mongo and writes to the cache. A failure names the dependency that failed.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	object{data=string}
//	@Failure		503	{object}	object{data=string}
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err.Error())
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
