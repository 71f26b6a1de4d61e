package ad

import (
	"time"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
)

type Type string

const (
	TypeText  Type = "text"
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeText, TypeImage, TypeVideo:
		return true
	}
	return false
}

// HasContent reports whether an ad of this type carries uploaded media
func (t Type) HasContent() bool {
	return t == TypeImage || t == TypeVideo
}

// Ad is a sponsor record. A wallet appears in EngagedUsers after engaging
// and moves to UsedAds once a transfer consumed that engagement. A wallet is
// never in both sets of the same ad.
type Ad struct {
	Id           string          `json:"id" bson:"id"`
	Title        string          `json:"title" bson:"title"`
	Description  string          `json:"description" bson:"description"`
	Link         string          `json:"link" bson:"link"`
	Type         Type            `json:"type" bson:"type"`
	ContentUrl   *string         `json:"contentUrl" bson:"contentUrl"`
	EngagedUsers []domain.Pubkey `json:"engagedUsers" bson:"engagedUsers"`
	UsedAds      []domain.Pubkey `json:"usedAds" bson:"usedAds"`
	Submitter    domain.Pubkey   `json:"submitter,omitempty" bson:"submitter,omitempty"`
	Timestamp    time.Time       `json:"timestamp" bson:"timestamp"`
}

func (a *Ad) HasEngaged(w domain.Pubkey) bool {
	return contains(a.EngagedUsers, w)
}

func (a *Ad) HasUsed(w domain.Pubkey) bool {
	return contains(a.UsedAds, w)
}

func contains(set []domain.Pubkey, w domain.Pubkey) bool {
	for _, v := range set {
		if v == w {
			return true
		}
	}
	return false
}

// Submission is an ad creation request. Content is required for image and
// video ads and ignored for text ads.
type Submission struct {
	Title       string `form:"title" validate:"required,max=120"`
	Description string `form:"description" validate:"required,max=2000"`
	Link        string `form:"link" validate:"required,url"`
	Type        Type   `form:"type" validate:"required,oneof=text image video"`
	Content     []byte `form:"-"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Ad, error)
	FindOne(c ctx.Ctx, id string) (*Ad, error)
	// FindEngaged returns one ad whose EngagedUsers holds w
	FindEngaged(c ctx.Ctx, w domain.Pubkey) (*Ad, error)
	// CountUsed returns the number of ads whose UsedAds holds w
	CountUsed(c ctx.Ctx, w domain.Pubkey) (int, error)
	Create(c ctx.Ctx, a *Ad) error
	// AddEngagement adds w to EngagedUsers unless w already used the ad.
	// It returns domain.ErrNotFound when no ad accepted the update.
	AddEngagement(c ctx.Ctx, id string, w domain.Pubkey) error
	// ConsumeEngagement moves w from EngagedUsers to UsedAds in one write,
	// conditional on w still being engaged. It returns domain.ErrNotFound when
	// the condition did not hold.
	ConsumeEngagement(c ctx.Ctx, id string, w domain.Pubkey) error
	EnsureIndexes(c ctx.Ctx) error
}

// Tracker is the sponsor protocol: listing ads and recording engagement
type Tracker interface {
	GetAds(c ctx.Ctx) ([]*Ad, error)
	Engage(c ctx.Ctx, w domain.Pubkey, id string) error
}

// Consumer marks the engagement of w with ad id as used
type Consumer interface {
	ConsumeEngagement(c ctx.Ctx, id string, w domain.Pubkey) error
}

type Usecase interface {
	Tracker
	Consumer
	FindOne(c ctx.Ctx, id string) (*Ad, error)
	Create(c ctx.Ctx, a *Ad) error
}

type SubmissionUsecase interface {
	// PayFixedFee transfers the ad fee from the session wallet to the treasury
	PayFixedFee(c ctx.Ctx, sessionId string) (*FeeReceipt, error)
	// SubmitAd pays the fee, stores the content and persists the ad
	SubmitAd(c ctx.Ctx, sessionId string, s *Submission) (*Ad, error)
}

type FeeReceipt struct {
	Signature string `json:"signature"`
	Lamports  uint64 `json:"lamports"`
	Message   string `json:"message"`
}

type SponsorAction string

const (
	SponsorActionGetAds   SponsorAction = "get-ads"
	SponsorActionEngageAd SponsorAction = "engage-ad"
)

// SponsorRequest is the body of the sponsor endpoint
type SponsorRequest struct {
	Action     SponsorAction `json:"action"`
	UserPubkey string        `json:"userPubkey,omitempty"`
	AdId       string        `json:"adId,omitempty"`
}

type SponsorResponse struct {
	Success bool   `json:"success"`
	Ads     []*Ad  `json:"ads,omitempty"`
	Error   string `json:"error,omitempty"`
}
