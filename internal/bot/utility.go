package bot

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: "🏓 Pinging..."},
	})
	if err != nil {
		b.logger.Error("Failed to send ping response", zap.Error(err))
		return
	}
	responseTime := time.Since(start)

	embed := &discordgo.MessageEmbed{
		Title: "🏓 Pong!",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Gateway Latency", Value: fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "Response Time", Value: fmt.Sprintf("%dms", responseTime.Milliseconds()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requesterName(i)),
		},
	}

	empty := ""
	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &empty,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		b.logger.Error("Failed to edit ping response", zap.Error(err))
	}
}

func (b *Bot) handleBotInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "🤖 Bot Information",
		Description: "Skycord, a weather-first Discord companion",
		Color:       colorBlurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📊 Servers", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "🌦️ Active Weather Views", Value: fmt.Sprintf("%d", b.sessions.Len()), Inline: true},
			{Name: "⏰ Uptime", Value: formatUptime(b.Uptime()), Inline: true},
			{Name: "🐹 Go", Value: runtime.Version(), Inline: true},
			{Name: "🖥️ Platform", Value: runtime.GOOS + "/" + runtime.GOARCH, Inline: true},
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send botinfo response", zap.Error(err))
	}
}

func (b *Bot) handleServerInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		if err := errorResponse(s, i, "❌ This command can only be used in a server!"); err != nil {
			b.logger.Error("Failed to send serverinfo error", zap.Error(err))
		}
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
	}
	if err != nil {
		b.logger.Warn("Guild lookup failed", zap.String("guild", i.GuildID), zap.Error(err))
		if err := errorResponse(s, i, "❌ Couldn't load server information."); err != nil {
			b.logger.Error("Failed to send serverinfo error", zap.Error(err))
		}
		return
	}

	created := "Unknown"
	if ts, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		created = ts.Format("January 2, 2006")
	}

	textChannels, voiceChannels := 0, 0
	for _, channel := range guild.Channels {
		switch channel.Type {
		case discordgo.ChannelTypeGuildText:
			textChannels++
		case discordgo.ChannelTypeGuildVoice:
			voiceChannels++
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "🏰 " + guild.Name,
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👑 Owner", Value: "<@" + guild.OwnerID + ">", Inline: true},
			{Name: "📅 Created", Value: created, Inline: true},
			{Name: "🆔 Server ID", Value: guild.ID, Inline: true},
			{Name: "👥 Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "📢 Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
			{Name: "📝 Text Channels", Value: fmt.Sprintf("%d", textChannels), Inline: true},
			{Name: "🔊 Voice Channels", Value: fmt.Sprintf("%d", voiceChannels), Inline: true},
			{Name: "👤 Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
			{Name: "😀 Emojis", Value: fmt.Sprintf("%d", len(guild.Emojis)), Inline: true},
		},
	}
	if guild.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("256")}
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send serverinfo response", zap.Error(err))
	}
}

func (b *Bot) handleUserInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := requesterUser(i)
	if opt, ok := optionMap(i)["member"]; ok {
		user = opt.UserValue(s)
	}
	if user == nil {
		return
	}

	created := "Unknown"
	if ts, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		created = ts.Format("January 2, 2006")
	}

	isBot := "No"
	if user.Bot {
		isBot = "Yes"
	}

	embed := &discordgo.MessageEmbed{
		Title: "👤 " + user.Username,
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏷️ Username", Value: user.Username, Inline: true},
			{Name: "🆔 User ID", Value: user.ID, Inline: true},
			{Name: "📅 Account Created", Value: created, Inline: true},
		},
	}

	if i.GuildID != "" {
		if member, err := s.GuildMember(i.GuildID, user.ID); err == nil {
			if !member.JoinedAt.IsZero() {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name: "📥 Joined Server", Value: member.JoinedAt.Format("January 2, 2006"), Inline: true,
				})
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "👤 Roles", Value: fmt.Sprintf("%d", len(member.Roles)), Inline: true,
			})
		}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "🤖 Bot", Value: isBot, Inline: true,
	})
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send userinfo response", zap.Error(err))
	}
}

func (b *Bot) handleAvatar(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := requesterUser(i)
	if opt, ok := optionMap(i)["member"]; ok {
		user = opt.UserValue(s)
	}
	if user == nil {
		return
	}

	avatarURL := user.AvatarURL("1024")
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🖼️ %s's Avatar", user.Username),
		Color: colorBlue,
		Image: &discordgo.MessageEmbedImage{URL: avatarURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Download", Value: fmt.Sprintf("[Click here](%s)", avatarURL), Inline: false},
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send avatar response", zap.Error(err))
	}
}

func (b *Bot) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		if err := errorResponse(s, i, "❌ This command can only be used in servers!"); err != nil {
			b.logger.Error("Failed to send clear error", zap.Error(err))
		}
		return
	}

	amount := 10
	if opt, ok := optionMap(i)["amount"]; ok {
		amount = int(opt.IntValue())
	}
	if amount < 1 || amount > 100 {
		if err := errorResponse(s, i, "❌ Amount must be between 1 and 100!"); err != nil {
			b.logger.Error("Failed to send clear error", zap.Error(err))
		}
		return
	}

	if err := deferEphemeral(s, i); err != nil {
		b.logger.Error("Failed to defer clear response", zap.Error(err))
		return
	}

	messages, err := s.ChannelMessages(i.ChannelID, amount, "", "", "")
	if err != nil {
		b.logger.Warn("Message listing failed", zap.Error(err))
		if err := followupEphemeral(s, i, "❌ Couldn't read messages in this channel."); err != nil {
			b.logger.Error("Failed to send clear error", zap.Error(err))
		}
		return
	}

	// Bulk delete rejects messages older than 14 days.
	cutoff := time.Now().Add(-14 * 24 * time.Hour)
	var ids []string
	for _, msg := range messages {
		if ts, err := discordgo.SnowflakeTimestamp(msg.ID); err == nil && ts.After(cutoff) {
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) == 0 {
		if err := followupEphemeral(s, i, "❌ Cannot delete messages older than 14 days."); err != nil {
			b.logger.Error("Failed to send clear error", zap.Error(err))
		}
		return
	}

	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		b.logger.Warn("Bulk delete failed", zap.Error(err))
		if err := followupEphemeral(s, i, "❌ I don't have permission to delete messages in this channel!"); err != nil {
			b.logger.Error("Failed to send clear error", zap.Error(err))
		}
		return
	}

	if err := followupEphemeral(s, i, fmt.Sprintf("✅ Successfully cleared %d message(s).", len(ids))); err != nil {
		b.logger.Error("Failed to send clear confirmation", zap.Error(err))
	}
}

const maxTimerSeconds = 86400

func (b *Bot) handleTimer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	input := optionMap(i)["duration"].StringValue()

	total := parseTimerDuration(input)
	if total <= 0 {
		msg := "❌ Invalid duration format! Examples:\n" +
			"• `30` (30 seconds)\n" +
			"• `5m` (5 minutes)\n" +
			"• `1h30m` (1 hour 30 minutes)\n" +
			"• `90s` (90 seconds)"
		if err := errorResponse(s, i, msg); err != nil {
			b.logger.Error("Failed to send timer error", zap.Error(err))
		}
		return
	}
	if total > maxTimerSeconds {
		if err := errorResponse(s, i, "❌ Maximum timer duration is 24 hours!"); err != nil {
			b.logger.Error("Failed to send timer error", zap.Error(err))
		}
		return
	}

	display := formatTimerDuration(total)
	embed := &discordgo.MessageEmbed{
		Title:       "⏱️ Timer Started",
		Description: fmt.Sprintf("Timer set for **%s**\nYou will be notified when it's done!", display),
		Color:       colorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Started by %s", requesterName(i)),
		},
	}
	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send timer response", zap.Error(err))
		return
	}

	channelID := i.ChannelID
	mention := ""
	if u := requesterUser(i); u != nil {
		mention = u.Mention()
	}

	// Interaction tokens lapse after 15 minutes, so the completion ping
	// goes out as a plain channel message.
	time.AfterFunc(time.Duration(total)*time.Second, func() {
		finish := &discordgo.MessageEmbed{
			Title:       "⏰ Timer Finished!",
			Description: fmt.Sprintf("Your **%s** timer is complete!", display),
			Color:       colorGreen,
		}
		_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content: mention,
			Embeds:  []*discordgo.MessageEmbed{finish},
		})
		if err != nil {
			b.logger.Warn("Failed to send timer completion", zap.Error(err))
		}
	})
}

// parseTimerDuration accepts a bare number of seconds or h/m/s groups like
// "1h30m". Unknown characters are skipped; garbage yields zero.
func parseTimerDuration(input string) int {
	input = strings.ToLower(strings.TrimSpace(input))

	total := 0
	number := ""
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			number += string(r)
		case r == 'h' || r == 'm' || r == 's':
			if number == "" {
				continue
			}
			n, _ := strconv.Atoi(number)
			switch r {
			case 'h':
				total += n * 3600
			case 'm':
				total += n * 60
			case 's':
				total += n
			}
			number = ""
		}
	}
	// A trailing bare number counts as seconds.
	if number != "" {
		n, _ := strconv.Atoi(number)
		total += n
	}
	return total
}

func formatTimerDuration(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

func formatUptime(d time.Duration) string {
	if d == 0 {
		return "just started"
	}
	d = d.Round(time.Second)

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm %ds", minutes, int(d.Seconds())%60)
	}
}
