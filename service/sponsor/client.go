package sponsor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
)

const defaultTimeout = 10 * time.Second

var (
	ErrStatusCodeNotOk = xerrors.Errorf("http.status != 200: %w", domain.ErrSponsorRejected)
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url of the sponsor endpoint, e.g. https://example.com/api/sponsor
	Url string
}

type client struct {
	client  http.Client
	timeout time.Duration
	url     string
}

// NewClient returns an ad.Tracker backed by a remote sponsor endpoint
func NewClient(cfg *ClientCfg) ad.Tracker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		url:     cfg.Url,
	}
}

func (c *client) GetAds(ctx bCtx.Ctx) ([]*ad.Ad, error) {
	resp, err := c.post(ctx, &ad.SponsorRequest{Action: ad.SponsorActionGetAds})
	if err != nil {
		return nil, err
	}
	if resp.Ads == nil {
		return []*ad.Ad{}, nil
	}
	return resp.Ads, nil
}

func (c *client) Engage(ctx bCtx.Ctx, w domain.Pubkey, id string) error {
	_, err := c.post(ctx, &ad.SponsorRequest{
		Action:     ad.SponsorActionEngageAd,
		UserPubkey: w.String(),
		AdId:       id,
	})
	return err
}

func (c *client) post(ctx bCtx.Ctx, req *ad.SponsorRequest) (*ad.SponsorResponse, error) {
	ctx = bCtx.WithValue(ctx, "action", req.Action)
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	data, status, err := c.do(ctx, body)
	if err != nil {
		return nil, err
	}

	resp := &ad.SponsorResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		if status != http.StatusOK {
			return nil, ErrStatusCodeNotOk
		}
		return nil, err
	}
	if !resp.Success {
		ctx.WithFields(log.Fields{"statusCode": status, "error": resp.Error}).Warn("sponsor request rejected")
		return nil, toDomainErr(status, resp.Error)
	}
	return resp, nil
}

// toDomainErr recovers the error kind from a rejected sponsor response
func toDomainErr(status int, msg string) error {
	for _, kind := range []error{domain.ErrAlreadyUsed, domain.ErrNotFound, domain.ErrBadParamInput} {
		if msg == kind.Error() {
			return kind
		}
	}
	if status == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return xerrors.Errorf("%s: %w", msg, domain.ErrSponsorRejected)
}

func (c *client) do(ctx bCtx.Ctx, body []byte) ([]byte, int, error) {
	timeoutCtx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("http.NewRequest failed")
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("client.Do failed")
		return nil, 0, xerrors.Errorf("%v: %w", err, domain.ErrSponsorRejected)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("failed to read body")
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}
