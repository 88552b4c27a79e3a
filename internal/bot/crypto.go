package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"skycord/pkg/client"
)

func (b *Bot) handleCrypto(s *discordgo.Session, i *discordgo.InteractionCreate) {
	coin := strings.ToLower(strings.TrimSpace(optionMap(i)["coin"].StringValue()))

	if err := deferResponse(s, i); err != nil {
		b.logger.Error("Failed to defer crypto response", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.RequestTimeout)
	defer cancel()

	quote, err := b.coinGeckoClient.Quote(ctx, coin)
	if err != nil {
		msg := "❌ Error fetching cryptocurrency data. Please try again later."
		if errors.Is(err, client.ErrCoinNotFound) {
			msg = fmt.Sprintf("❌ Cryptocurrency '%s' not found. Try using the full name or common symbol (e.g., 'bitcoin', 'ethereum', 'btc', 'eth').", coin)
		}
		if err := followupText(s, i, msg); err != nil {
			b.logger.Error("Failed to send crypto error", zap.Error(err))
		}
		return
	}

	changeEmoji := "📈"
	color := colorGreen
	if quote.Change24h < 0 {
		changeEmoji = "📉"
		color = colorRed
	}

	var trend string
	switch {
	case quote.Change24h >= 10:
		trend = "🚀 Mooning!"
	case quote.Change24h <= -10:
		trend = "💥 Crashing!"
	case quote.Change24h >= 5:
		trend = "📈 Strong move"
	case quote.Change24h <= -5:
		trend = "📉 Strong drop"
	default:
		trend = "📊 Stable"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💰 %s (%s)", quote.Name, strings.ToUpper(quote.Symbol)),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💵 Price", Value: formatPrice(quote.PriceUSD), Inline: true},
			{Name: changeEmoji + " 24h Change", Value: fmt.Sprintf("%+.2f%%", quote.Change24h), Inline: true},
			{Name: "📊 Market Cap", Value: formatLargeUSD(quote.MarketCap), Inline: true},
			{Name: "📈 24h Volume", Value: formatLargeUSD(quote.Volume24h), Inline: true},
			{Name: "🎯 Trend", Value: trend, Inline: true},
			{Name: "⚠️ Disclaimer", Value: "This is not financial advice. DYOR!", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s • Data from CoinGecko", requesterName(i)),
		},
	}

	if err := followupEmbed(s, i, embed, nil); err != nil {
		b.logger.Error("Failed to send crypto embed", zap.Error(err))
	}
}

// formatPrice scales precision down as the price grows, so sub-cent coins
// stay legible.
func formatPrice(price float64) string {
	switch {
	case price >= 1:
		return "$" + groupThousands(fmt.Sprintf("%.2f", price))
	case price >= 0.01:
		return fmt.Sprintf("$%.4f", price)
	default:
		return fmt.Sprintf("$%.8f", price)
	}
}

func formatLargeUSD(v float64) string {
	switch {
	case v <= 0:
		return "N/A"
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return "$" + groupThousands(fmt.Sprintf("%.0f", v))
	}
}

// groupThousands inserts commas into the integer part of a formatted
// decimal string.
func groupThousands(s string) string {
	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}

	var sb strings.Builder
	lead := n % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for pos := lead; pos < n; pos += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[pos : pos+3])
	}
	return sb.String() + frac
}
