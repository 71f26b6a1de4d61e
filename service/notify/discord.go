package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/ptr"
	"github.com/gaslex/goapi/domain/ad"
)

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	session   embedSender
	channelId string
}

func NewDiscord(botKey, channelId string) (Notifier, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", botKey))
	if err != nil {
		return nil, xerrors.Errorf("discordgo.New: %w", err)
	}
	return &discordNotifier{session: session, channelId: channelId}, nil
}

func (n *discordNotifier) NotifyAdSubmitted(c ctx.Ctx, a *ad.Ad) error {
	msg := &discordgo.MessageEmbed{
		Title:       "New ad submitted!",
		Description: a.Link,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Title", Value: a.Title},
			{Name: "Type", Value: string(a.Type)},
			{Name: "Description", Value: a.Description},
			{Name: "Submitter", Value: a.Submitter.String()},
		},
	}
	if a.Type == ad.TypeImage {
		if url := ptr.Deref(a.ContentUrl); url != "" {
			msg.Image = &discordgo.MessageEmbedImage{URL: url}
		}
	}
	if _, err := n.session.ChannelMessageSendEmbed(n.channelId, msg); err != nil {
		c.WithField("err", err).Error("ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
