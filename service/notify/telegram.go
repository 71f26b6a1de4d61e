package notify

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain/ad"
)

type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type telegramNotifier struct {
	bot    messageSender
	chatId int64
}

func NewTelegram(token string, chatId int64) (Notifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, xerrors.Errorf("bot.New: %w", err)
	}
	return &telegramNotifier{bot: b, chatId: chatId}, nil
}

func (n *telegramNotifier) NotifyAdSubmitted(c ctx.Ctx, a *ad.Ad) error {
	if _, err := n.bot.SendMessage(c, &bot.SendMessageParams{
		ChatID: n.chatId,
		Text:   adSummary(a),
	}); err != nil {
		c.WithField("err", err).Error("SendMessage failed")
		return err
	}
	return nil
}
