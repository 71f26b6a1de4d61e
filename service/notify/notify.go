package notify

import (
	"fmt"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/ptr"
	"github.com/gaslex/goapi/domain/ad"
)

// Notifier announces events to an operator channel
type Notifier interface {
	NotifyAdSubmitted(c ctx.Ctx, a *ad.Ad) error
}

type nop struct{}

func NewNop() Notifier {
	return nop{}
}

func (nop) NotifyAdSubmitted(ctx.Ctx, *ad.Ad) error {
	return nil
}

func adSummary(a *ad.Ad) string {
	s := fmt.Sprintf("New %s ad: %s\n%s\n%s", a.Type, a.Title, a.Description, a.Link)
	if url := ptr.Deref(a.ContentUrl); url != "" {
		s += "\n" + url
	}
	return s
}
