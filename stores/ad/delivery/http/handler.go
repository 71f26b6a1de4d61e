package http

import (
	"io"
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/delivery"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/wallet"
)

type HandlerCfg struct {
	// Sponsor serves POST /api/sponsor
	Sponsor ad.Usecase
	// Tracker is what the dashboard routes talk to, either Sponsor itself or
	// a remote sponsor api
	Tracker         ad.Tracker
	Submission      ad.SubmissionUsecase
	Wallets         wallet.Usecase
	Auth            echo.MiddlewareFunc
	MaxContentBytes int64
}

type handler struct {
	sponsor    ad.Usecase
	tracker    ad.Tracker
	submission ad.SubmissionUsecase
	wallets    wallet.Usecase
	maxBytes   int64
}

func New(e *echo.Echo, cfg *HandlerCfg) {
	h := &handler{
		sponsor:    cfg.Sponsor,
		tracker:    cfg.Tracker,
		submission: cfg.Submission,
		wallets:    cfg.Wallets,
		maxBytes:   cfg.MaxContentBytes,
	}
	e.POST("/api/sponsor", h.sponsorApi)

	g := e.Group("/ads", cfg.Auth)
	g.GET("", h.getAds)
	g.POST("", h.submit)
	g.POST("/fee", h.payFee)
	g.POST("/:id/engage", h.engage)
}

// sponsorApi
//
//	@Summary		Sponsor protocol
//	@Description	"get-ads" lists ads newest first, "engage-ad" records an engagement of userPubkey with adId
//	@Tags			sponsor
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ad.SponsorRequest	true	"action"
//	@Success		200		{object}	ad.SponsorResponse
//	@Failure		400		{object}	ad.SponsorResponse
//	@Failure		500		{object}	ad.SponsorResponse
//	@Router			/api/sponsor [post]
func (h *handler) sponsorApi(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &ad.SponsorRequest{}
	if err := c.Bind(req); err != nil {
		return sponsorFail(c, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput))
	}

	switch req.Action {
	case ad.SponsorActionGetAds:
		ads, err := h.sponsor.GetAds(ctx)
		if err != nil {
			return sponsorFail(c, err)
		}
		return c.JSON(http.StatusOK, &ad.SponsorResponse{Success: true, Ads: ads})
	case ad.SponsorActionEngageAd:
		if err := h.sponsor.Engage(ctx, domain.Pubkey(req.UserPubkey), req.AdId); err != nil {
			return sponsorFail(c, err)
		}
		return c.JSON(http.StatusOK, &ad.SponsorResponse{Success: true})
	default:
		return sponsorFail(c, xerrors.Errorf("action %q: %w", req.Action, domain.ErrBadParamInput))
	}
}

func sponsorFail(c echo.Context, err error) error {
	return c.JSON(delivery.StatusOf(err), &ad.SponsorResponse{Success: false, Error: delivery.MessageOf(err)})
}

// getAds
//
//	@Summary		List ads
//	@Description	Fetch the sponsor ads and keep them as the session's ad list
//	@Tags			ads
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=[]ad.Ad}
//	@Failure		401
//	@Failure		502
//	@Router			/ads [get]
func (h *handler) getAds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	ads, err := h.tracker.GetAds(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("tracker.GetAds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if err := h.wallets.SetAds(ctx, sessionId, ads); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ads)
}

// engage
//
//	@Summary		Engage with an ad
//	@Description	Record that the session wallet engaged with the ad and return the ad link to open
//	@Tags			ads
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id	path		string	true	"ad id"
//	@Success		200	{object}	object{data=object{adId=string,link=string}}
//	@Failure		401
//	@Failure		403
//	@Failure		404
//	@Router			/ads/{id}/engage [post]
func (h *handler) engage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)
	id := c.Param("id")

	s, err := h.wallets.Get(ctx, sessionId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	a := s.FindAd(id)
	if a == nil {
		ads, err := h.tracker.GetAds(ctx)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		if err := h.wallets.SetAds(ctx, sessionId, ads); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		for _, v := range ads {
			if v.Id == id {
				a = v
			}
		}
	}
	if a == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, xerrors.Errorf("ad %s: %w", id, domain.ErrNotFound))
	}

	if err := h.tracker.Engage(ctx, s.Pubkey, id); err != nil {
		ctx.WithField("err", err).Warn("tracker.Engage failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		AdId string `json:"adId"`
		Link string `json:"link"`
	}{id, a.Link}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// payFee
//
//	@Summary		Pay the ad fee
//	@Description	Transfer the fixed ad submission fee from the session wallet to the treasury
//	@Tags			ads
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=ad.FeeReceipt}
//	@Failure		401
//	@Failure		409
//	@Failure		502
//	@Router			/ads/fee [post]
func (h *handler) payFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	if res, err := h.submission.PayFixedFee(ctx, sessionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// submit
//
//	@Summary		Submit an ad
//	@Description	Pay the ad fee, upload the content and publish the ad
//	@Tags			ads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			title		formData	string	true	"title"
//	@Param			description	formData	string	true	"description"
//	@Param			link		formData	string	true	"link"
//	@Param			type		formData	string	true	"text, image or video"
//	@Param			content		formData	file	false	"media for image and video ads"
//	@Success		201			{object}	object{data=ad.Ad}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Failure		413
//	@Failure		502
//	@Router			/ads [post]
func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sessionId := c.Get("sessionId").(string)

	sub := &ad.Submission{}
	if err := c.Bind(sub); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput))
	}

	if sub.Type.HasContent() {
		content, err := h.readContent(c)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		sub.Content = content
	}

	if res, err := h.submission.SubmitAd(ctx, sessionId, sub); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) readContent(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("content")
	if err == http.ErrMissingFile {
		return nil, xerrors.Errorf("missing content: %w", domain.ErrContentMismatch)
	} else if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return nil, xerrors.Errorf("%d bytes: %w", fh.Size, domain.ErrContentTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxBytes > 0 {
		r = io.LimitReader(f, h.maxBytes+1)
	}
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if h.maxBytes > 0 && int64(len(content)) > h.maxBytes {
		return nil, xerrors.Errorf("%d bytes: %w", len(content), domain.ErrContentTooLarge)
	}
	return content, nil
}
