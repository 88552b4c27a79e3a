package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"skycord/internal/weather"
)

const (
	colorGreen   = 0x2ECC71
	colorRed     = 0xE74C3C
	colorGold    = 0xF1C40F
	colorBlue    = 0x3498DB
	colorOrange  = 0xE67E22
	colorPurple  = 0x9B59B6
	colorBlurple = 0x5865F2
)

// viewEmbed converts a rendered weather view into a Discord embed.
func viewEmbed(view *weather.View) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       view.Title,
		Description: view.Description,
		Color:       view.Color,
	}
	for _, section := range view.Sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   section.Name,
			Value:  section.Value,
			Inline: section.Inline,
		})
	}
	if view.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: view.Footer}
	}
	return embed
}

// weatherComponents builds the two button rows for a weather session. The
// active tab's button is highlighted; the unit toggle always shows the
// other system.
func weatherComponents(session weatherSession) []discordgo.MessageComponent {
	sel := session.Selection

	unitLabel := "°F"
	if sel.Units == weather.UnitsImperial {
		unitLabel = "°C"
	}

	tabButton := func(label string, emoji string, tab weather.Tab) discordgo.Button {
		style := discordgo.SecondaryButton
		if sel.Tab == tab {
			style = discordgo.PrimaryButton
		}
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: customID(session.ID, string(tab)),
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    unitLabel,
					Style:    discordgo.SuccessButton,
					CustomID: customID(session.ID, "units"),
				},
				tabButton("Current", "🌤️", weather.TabCurrent),
				tabButton("Hourly", "⏰", weather.TabHourly),
				tabButton("Daily", "📅", weather.TabDaily),
				tabButton("Details", "📊", weather.TabDetails),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				tabButton("Activities", "🎯", weather.TabActivities),
				tabButton("Air Quality", "💨", weather.TabAirQuality),
			},
		},
	}
}

func customID(sessionID, action string) string {
	return fmt.Sprintf("weather:%s:%s", sessionID, action)
}

// parseCustomID splits a weather component ID into session and action.
func parseCustomID(id string) (sessionID, action string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != "weather" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func errorResponse(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func embedResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// componentResponse sends an embed with message components attached.
func componentResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

func contentEmbedResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  []*discordgo.MessageEmbed{embed},
		},
	})
}

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: msg,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

func followupEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	return err
}

func followupText(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: msg,
	})
	return err
}

// requesterName prefers the guild nickname form of the invoking user.
func requesterName(i *discordgo.InteractionCreate) string {
	if u := requesterUser(i); u != nil {
		return u.Username
	}
	return "unknown"
}

// requesterUser returns the invoking user from either the guild member or
// the DM payload.
func requesterUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
