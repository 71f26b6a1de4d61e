package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/delivery"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/wallet"
)

type authHandler struct {
	auth    domain.AuthUsecase
	wallets wallet.Usecase
}

func New(e *echo.Echo, auth domain.AuthUsecase, wallets wallet.Usecase, authMw echo.MiddlewareFunc) {
	handler := &authHandler{
		auth:    auth,
		wallets: wallets,
	}
	g := e.Group("/sessions")
	g.POST("", handler.connect)
	g.DELETE("", handler.disconnect, authMw)
}

type sessionResp struct {
	Token   string          `json:"token"`
	Session *wallet.Session `json:"session"`
}

// connect
//
//	@Summary		Connect wallet
//	@Description	Open a dashboard session for a wallet held by this service and get its access token
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.connect.params	true	"params"
//	@Success		201		{object}	object{data=http.sessionResp}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/sessions [post]
func (h *authHandler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Pubkey  domain.Pubkey  `json:"pubkey" example:"9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"` // wallet public key
		Network domain.Network `json:"network" example:"devnet"`                                     // defaults to the configured network
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput))
	}

	s, err := h.wallets.Connect(ctx, p.Pubkey, p.Network)
	if err != nil {
		ctx.WithField("err", err).Warn("wallets.Connect failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if tkn, err := h.auth.SignToken(ctx, s.Id, s.Pubkey, s.Network); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		if err := h.wallets.Disconnect(ctx, s.Id); err != nil {
			ctx.WithField("err", err).Warn("wallets.Disconnect failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, &sessionResp{tkn, s})
	}
}

// disconnect
//
//	@Summary		Disconnect wallet
//	@Description	Close the session and stop its balance refresh
//	@Tags			sessions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200
//	@Failure		401
//	@Router			/sessions [delete]
func (h *authHandler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	if err := h.wallets.Disconnect(ctx, sessionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "disconnected")
}
