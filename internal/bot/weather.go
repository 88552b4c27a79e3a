package bot

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"skycord/internal/weather"
	"skycord/pkg/client"
)

func (b *Bot) handleWeather(s *discordgo.Session, i *discordgo.InteractionCreate) {
	location := optionMap(i)["location"].StringValue()

	if err := deferResponse(s, i); err != nil {
		b.logger.Error("Failed to defer weather response", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.RequestTimeout)
	defer cancel()

	snap, loc, err := b.weatherClient.FetchSnapshot(ctx, location)
	if err != nil {
		b.logger.Warn("Weather fetch failed",
			zap.String("query", location),
			zap.Error(err))
		msg := "❌ Couldn't fetch weather data. Please try again later."
		if errors.Is(err, client.ErrLocationNotFound) {
			msg = "❌ Location not found: **" + location + "**. Try a city name like \"Lisbon\" or \"Portland, Oregon\"."
		}
		if err := followupText(s, i, msg); err != nil {
			b.logger.Error("Failed to send weather error", zap.Error(err))
		}
		return
	}

	session := b.sessions.Create(snap, loc, requesterID(i))
	view := weather.Render(snap, loc, session.Selection)

	if err := followupEmbed(s, i, viewEmbed(view), weatherComponents(session)); err != nil {
		b.logger.Error("Failed to send weather embed", zap.Error(err))
	}
}

// handleWeatherComponent routes button presses on a weather message. The
// message is updated in place with the re-rendered view. The selection
// mutation happens inside the store so concurrent presses on the same
// message serialize.
func (b *Bot) handleWeatherComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sessionID, action, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}

	session, err := b.sessions.UpdateSelection(sessionID, requesterID(i), func(sel *weather.ViewSelection) {
		switch action {
		case "units":
			if sel.Units == weather.UnitsMetric {
				sel.Units = weather.UnitsImperial
			} else {
				sel.Units = weather.UnitsMetric
			}
		default:
			sel.Tab = weather.Tab(action)
		}
	})
	switch {
	case errors.Is(err, errSessionNotOwner):
		if err := errorResponse(s, i, "❌ Only the person who ran `/weather` can use these buttons."); err != nil {
			b.logger.Error("Failed to send owner notice", zap.Error(err))
		}
		return
	case err != nil:
		if err := errorResponse(s, i, "⏰ This weather view has expired. Run `/weather` again for fresh data."); err != nil {
			b.logger.Error("Failed to send expiry notice", zap.Error(err))
		}
		return
	}

	view := weather.Render(session.Snapshot, session.Location, session.Selection)

	respondErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{viewEmbed(view)},
			Components: weatherComponents(session),
		},
	})
	if respondErr != nil {
		b.logger.Error("Failed to update weather message",
			zap.String("session", sessionID),
			zap.String("action", action),
			zap.Error(respondErr))
	}
}

func requesterID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
