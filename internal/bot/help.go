package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	weatherCommands := []string{
		"`/weather <location>` - Interactive weather with forecasts, air quality, and more",
	}
	apiCommands := []string{
		"`/crypto <coin>` - Cryptocurrency price information",
		"`/translate <text> [language]` - Translate text to another language",
		"`/meme` - Random meme from Reddit",
	}
	funCommands := []string{
		"`/8ball <question>` - Ask the magic 8-ball",
		"`/coinflip` - Flip a coin",
		"`/roll [sides]` - Roll a dice (default: 6, max: 100)",
		"`/choose <options>` - Choose between options",
		"`/quote` - Get an inspirational quote",
	}
	embedCommands := []string{
		"`/embed` - Interactive embed creator with buttons",
		"`/quickembed <content>` - Quick embed with just a description",
		"`/say <message>` - Make the bot say something in an embed",
		"`/announce <message>` - Announcement embed (manage messages)",
		"`/poll <question> <options>` - Poll with reaction voting",
		"`/embedinfo [message_id]` - Inspect an embed",
	}
	utilityCommands := []string{
		"`/ping` - Check bot latency and response time",
		"`/botinfo` - Display bot information",
		"`/serverinfo` - Display server information",
		"`/userinfo [member]` - Display user information",
		"`/avatar [member]` - Display a user's avatar",
		"`/clear [amount]` - Clear messages (manage messages)",
		"`/color <color>` - Color information",
		"`/timer <duration>` - Countdown timer",
		"`/help` - This message",
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🤖 Skycord Help",
		Description: "Here are all available slash commands:",
		Color:       colorBlurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🌤️ Weather Commands", Value: strings.Join(weatherCommands, "\n"), Inline: false},
			{Name: "🌐 API Commands", Value: strings.Join(apiCommands, "\n"), Inline: false},
			{Name: "🎮 Fun Commands", Value: strings.Join(funCommands, "\n"), Inline: false},
			{Name: "🛠️ Embed Commands", Value: strings.Join(embedCommands, "\n"), Inline: false},
			{Name: "🔧 Utility Commands", Value: strings.Join(utilityCommands, "\n"), Inline: false},
			{
				Name:   "💡 Interactive Features",
				Value:  "The weather view has buttons for switching units and tabs. Try `/weather` to see them in action!",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s • Total Commands: %d", requesterName(i), len(b.registered)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send help response", zap.Error(err))
	}
}
