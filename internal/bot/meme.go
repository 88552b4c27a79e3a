package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) handleMeme(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := deferResponse(s, i); err != nil {
		b.logger.Error("Failed to defer meme response", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.RequestTimeout)
	defer cancel()

	post, err := b.redditClient.RandomMeme(ctx)
	if err != nil {
		b.logger.Warn("Meme fetch failed", zap.Error(err))
		if err := followupText(s, i, "😅 Couldn't fetch a meme right now. Reddit might be having issues. Try again later!"); err != nil {
			b.logger.Error("Failed to send meme error", zap.Error(err))
		}
		return
	}

	title := post.Title
	if len(title) > 250 {
		title = title[:250]
	}

	embed := &discordgo.MessageEmbed{
		Title: "😂 " + title,
		URL:   post.Permalink,
		Color: colorOrange,
		Image: &discordgo.MessageEmbedImage{URL: post.ImageURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👍 Upvotes", Value: strconv.Itoa(post.Upvotes), Inline: true},
			{Name: "💬 Comments", Value: strconv.Itoa(post.Comments), Inline: true},
			{Name: "📱 Subreddit", Value: "r/" + post.Subreddit, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requesterName(i)),
		},
	}

	if err := followupEmbed(s, i, embed, nil); err != nil {
		b.logger.Error("Failed to send meme embed", zap.Error(err))
	}
}
