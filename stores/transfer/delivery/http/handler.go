package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/delivery"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/transfer"
)

type handler struct {
	transfer transfer.Usecase
}

func New(e *echo.Echo, transfer transfer.Usecase, auth echo.MiddlewareFunc) {
	h := &handler{transfer}
	e.POST("/wallet/transfers", h.send, auth)
}

// send
//
//	@Summary		Send SOL
//	@Description	Send SOL from the session wallet. Requires an ad engagement that was not used for a previous transfer, which this transfer consumes.
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			body	body		transfer.Request	true	"recipient and amount in SOL"
//	@Success		201		{object}	object{data=transfer.Result}
//	@Failure		400
//	@Failure		401
//	@Failure		403		"no unused ad engagement"
//	@Failure		409		"another transfer is running"
//	@Failure		502
//	@Router			/wallet/transfers [post]
func (h *handler) send(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	req := &transfer.Request{}
	if err := c.Bind(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput))
	}

	if res, err := h.transfer.AttemptGatedTransfer(ctx, sessionId, req); err != nil {
		ctx.WithField("err", err).Warn("transfer.AttemptGatedTransfer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}
