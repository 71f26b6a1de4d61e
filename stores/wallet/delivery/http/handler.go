package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/delivery"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/chain"
	"github.com/gaslex/goapi/domain/wallet"
)

type handler struct {
	wallets wallet.Usecase
	ledger  chain.Ledger
}

// New registers the wallet routes. networkMws wrap GET /networks only.
func New(e *echo.Echo, wallets wallet.Usecase, ledger chain.Ledger, auth echo.MiddlewareFunc, networkMws ...echo.MiddlewareFunc) {
	h := &handler{wallets, ledger}
	e.GET("/networks", h.getNetworks, networkMws...)

	g := e.Group("/wallet", auth)
	g.GET("", h.get)
	g.POST("/balance", h.refreshBalance)
	g.GET("/history", h.getHistory)
}

type walletView struct {
	Pubkey           domain.Pubkey  `json:"pubkey"`
	Network          domain.Network `json:"network"`
	NetworkLabel     string         `json:"networkLabel"`
	Balance          string         `json:"balance"`
	Lamports         uint64         `json:"lamports"`
	BalanceUpdatedAt int64          `json:"balanceUpdatedAt"`
	Busy             bool           `json:"busy"`
}

func (h *handler) view(s *wallet.Session) *walletView {
	v := &walletView{
		Pubkey:       s.Pubkey,
		Network:      s.Network,
		NetworkLabel: string(s.Network),
		Balance:      s.Balance,
		Lamports:     s.Lamports,
		Busy:         s.Busy,
	}
	if !s.BalanceUpdatedAt.IsZero() {
		v.BalanceUpdatedAt = s.BalanceUpdatedAt.Unix()
	}
	for _, n := range h.ledger.Networks() {
		if n.Name == s.Network {
			v.NetworkLabel = n.Label
		}
	}
	return v
}

// get
//
//	@Summary		Get wallet
//	@Description	Connected wallet, network label, balance in SOL with 4 decimals and busy flag
//	@Tags			wallet
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=http.walletView}
//	@Failure		401
//	@Router			/wallet [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	if s, err := h.wallets.Get(ctx, sessionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, h.view(s))
	}
}

// refreshBalance
//
//	@Summary		Refresh balance
//	@Description	Read the wallet balance from the network now
//	@Tags			wallet
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=http.walletView}
//	@Failure		401
//	@Failure		500
//	@Router			/wallet/balance [post]
func (h *handler) refreshBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	if s, err := h.wallets.RefreshBalance(ctx, sessionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, h.view(s))
	}
}

// getHistory
//
//	@Summary		Transaction history
//	@Description	Transfers and ad fees sent during this session, newest first
//	@Tags			wallet
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=[]wallet.HistoryEntry}
//	@Failure		401
//	@Router			/wallet/history [get]
func (h *handler) getHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	if res, err := h.wallets.History(ctx, sessionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// getNetworks
//
//	@Summary		List networks
//	@Description	Networks a session can connect to
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	object{data=[]chain.NetworkInfo}
//	@Router			/networks [get]
func (h *handler) getNetworks(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.ledger.Networks())
}
