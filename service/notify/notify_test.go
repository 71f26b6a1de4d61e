package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/viney-shih/goroutines"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/ptr"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/service/notify/mocks"
)

var mockCtx = ctx.Background()

func testAd() *ad.Ad {
	return &ad.Ad{
		Id:          "a1",
		Title:       "Cheap gas",
		Description: "Send SOL for free",
		Link:        "https://example.com",
		Type:        ad.TypeImage,
		ContentUrl:  ptr.String("https://storage.googleapis.com/bucket/ads/a1.png"),
		Submitter:   "4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE",
	}
}

type fakeDiscord struct {
	channel string
	embed   *discordgo.MessageEmbed
	err     error
}

func (f *fakeDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channel, f.embed = channelID, embed
	return &discordgo.Message{}, f.err
}

func TestDiscord(t *testing.T) {
	req := require.New(t)
	f := &fakeDiscord{}
	n := &discordNotifier{session: f, channelId: "c1"}

	req.NoError(n.NotifyAdSubmitted(mockCtx, testAd()))
	req.Equal("c1", f.channel)
	req.Equal("https://example.com", f.embed.Description)
	req.Equal("https://storage.googleapis.com/bucket/ads/a1.png", f.embed.Image.URL)
	req.Len(f.embed.Fields, 4)

	f.err = errors.New("rate limited")
	req.Error(n.NotifyAdSubmitted(mockCtx, testAd()))
}

type fakeTelegram struct {
	params *bot.SendMessageParams
}

func (f *fakeTelegram) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.params = params
	return &models.Message{}, nil
}

func TestTelegram(t *testing.T) {
	req := require.New(t)
	f := &fakeTelegram{}
	n := &telegramNotifier{bot: f, chatId: 42}

	req.NoError(n.NotifyAdSubmitted(mockCtx, testAd()))
	req.Equal(int64(42), f.params.ChatID)
	req.Contains(f.params.Text, "Cheap gas")
	req.Contains(f.params.Text, "ads/a1.png")
}

func TestAsync(t *testing.T) {
	req := require.New(t)
	pool := goroutines.NewPool(2)
	defer pool.Release()

	a := testAd()
	wg := sync.WaitGroup{}
	wg.Add(2)
	ok, failing := &mocks.Notifier{}, &mocks.Notifier{}
	ok.On("NotifyAdSubmitted", mock.Anything, a).Return(nil).Run(func(mock.Arguments) { wg.Done() }).Once()
	failing.On("NotifyAdSubmitted", mock.Anything, a).Return(errors.New("down")).Run(func(mock.Arguments) { wg.Done() }).Once()

	req.NoError(NewAsync(pool, ok, failing).NotifyAdSubmitted(mockCtx, a))

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("notifications not dispatched")
	}
	ok.AssertExpectations(t)
	failing.AssertExpectations(t)
}
