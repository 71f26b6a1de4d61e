package wallet

import (
	"time"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
)

type HistoryKind string

const (
	HistoryKindTransfer HistoryKind = "transfer"
	HistoryKindAdFee    HistoryKind = "ad_fee"
)

type HistoryEntry struct {
	Kind      HistoryKind   `json:"kind"`
	Signature string        `json:"signature"`
	To        domain.Pubkey `json:"to"`
	Lamports  uint64        `json:"lamports"`
	AdId      string        `json:"adId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Session is the dashboard state of one connected wallet. Busy is set while
// a transfer or an ad submission runs on its behalf.
type Session struct {
	Id               string          `json:"id"`
	Pubkey           domain.Pubkey   `json:"pubkey"`
	Network          domain.Network  `json:"network"`
	Lamports         uint64          `json:"lamports"`
	Balance          string          `json:"balance"`
	BalanceUpdatedAt time.Time       `json:"balanceUpdatedAt"`
	Busy             bool            `json:"busy"`
	Ads              []*ad.Ad        `json:"ads"`
	History          []*HistoryEntry `json:"-"`
	CreatedAt        time.Time       `json:"createdAt"`
	ExpiresAt        time.Time       `json:"expiresAt"`
}

// Clone returns a copy that shares no slices with s
func (s *Session) Clone() *Session {
	res := *s
	res.Ads = append([]*ad.Ad(nil), s.Ads...)
	res.History = append([]*HistoryEntry(nil), s.History...)
	return &res
}

func (s *Session) FindAd(id string) *ad.Ad {
	for _, a := range s.Ads {
		if a.Id == id {
			return a
		}
	}
	return nil
}

type SessionRepo interface {
	Create(c ctx.Ctx, s *Session) error
	Get(c ctx.Ctx, id string) (*Session, error)
	Update(c ctx.Ctx, id string, fn func(*Session) error) (*Session, error)
	Delete(c ctx.Ctx, id string) error
	// TryAcquire sets the busy flag, failing with domain.ErrSessionBusy if
	// it is already set
	TryAcquire(c ctx.Ctx, id string) (*Session, error)
	Release(c ctx.Ctx, id string) error
	FindExpired(c ctx.Ctx, now time.Time) ([]string, error)
}

type Usecase interface {
	Connect(c ctx.Ctx, owner domain.Pubkey, network domain.Network) (*Session, error)
	Disconnect(c ctx.Ctx, id string) error
	Get(c ctx.Ctx, id string) (*Session, error)
	RefreshBalance(c ctx.Ctx, id string) (*Session, error)
	Acquire(c ctx.Ctx, id string) (*Session, error)
	Release(c ctx.Ctx, id string)
	SetAds(c ctx.Ctx, id string, ads []*ad.Ad) error
	RecordHistory(c ctx.Ctx, id string, entry *HistoryEntry) error
	History(c ctx.Ctx, id string) ([]*HistoryEntry, error)
	// Close stops every balance refresher
	Close()
}
