package bot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var errInvalidColor = errors.New("invalid color format")

var namedColors = map[string]string{
	"red": "#FF0000", "blue": "#0000FF", "green": "#008000", "yellow": "#FFFF00",
	"orange": "#FFA500", "purple": "#800080", "pink": "#FFC0CB", "black": "#000000",
	"white": "#FFFFFF", "gray": "#808080", "grey": "#808080", "brown": "#A52A2A",
	"cyan": "#00FFFF", "magenta": "#FF00FF", "lime": "#00FF00", "navy": "#000080",
	"maroon": "#800000", "olive": "#808000", "teal": "#008080", "silver": "#C0C0C0",
}

// colorInfo is a parsed color with its display name and channel values.
type colorInfo struct {
	Name    string
	Hex     string
	R, G, B int
}

// parseColor accepts a color name, a #RRGGBB hex value or an R,G,B triple.
func parseColor(input string) (colorInfo, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(input, " ", ""))

	var hex, name string
	switch {
	case namedColors[cleaned] != "":
		hex = namedColors[cleaned]
		name = titleCase(cleaned)
	case strings.HasPrefix(cleaned, "#"):
		hex = strings.ToUpper(cleaned)
		if len(hex) != 7 {
			return colorInfo{}, errInvalidColor
		}
		name = "Custom"
	case strings.Contains(cleaned, ","):
		parts := strings.Split(cleaned, ",")
		if len(parts) != 3 {
			return colorInfo{}, errInvalidColor
		}
		rgb := make([]int, 3)
		for idx, part := range parts {
			value, err := strconv.Atoi(part)
			if err != nil || value < 0 || value > 255 {
				return colorInfo{}, errInvalidColor
			}
			rgb[idx] = value
		}
		hex = fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
		name = "Custom"
	default:
		return colorInfo{}, errInvalidColor
	}

	value, err := strconv.ParseInt(hex[1:], 16, 32)
	if err != nil {
		return colorInfo{}, errInvalidColor
	}

	return colorInfo{
		Name: name,
		Hex:  hex,
		R:    int(value >> 16 & 0xFF),
		G:    int(value >> 8 & 0xFF),
		B:    int(value & 0xFF),
	}, nil
}

// Value is the color packed for an embed.
func (c colorInfo) Value() int {
	return c.R<<16 | c.G<<8 | c.B
}

// HSL converts the color to hue (degrees), saturation and lightness (0-1).
func (c colorInfo) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	diff := max - min

	l = (max + min) / 2
	if diff == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = diff / (2 - max - min)
	} else {
		s = diff / (max + min)
	}

	switch max {
	case r:
		h = math.Mod(60*((g-b)/diff)+360, 360)
	case g:
		h = math.Mod(60*((b-r)/diff)+120, 360)
	default:
		h = math.Mod(60*((r-g)/diff)+240, 360)
	}
	return h, s, l
}

// Brightness is the perceived luma on a 0-1 scale.
func (c colorInfo) Brightness() float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255
}

// Complementary is the hex value of the inverted color.
func (c colorInfo) Complementary() string {
	return fmt.Sprintf("#%02X%02X%02X", 255-c.R, 255-c.G, 255-c.B)
}

func (b *Bot) handleColor(s *discordgo.Session, i *discordgo.InteractionCreate) {
	input := optionMap(i)["color"].StringValue()

	info, err := parseColor(input)
	if err != nil {
		msg := "❌ Invalid color format! Use:\n" +
			"• **Hex:** `#FF0000`\n" +
			"• **RGB:** `255,0,0`\n" +
			"• **Name:** `red`, `blue`, `green`, etc."
		if err := errorResponse(s, i, msg); err != nil {
			b.logger.Error("Failed to send color error", zap.Error(err))
		}
		return
	}

	hue, saturation, lightness := info.HSL()
	brightness := info.Brightness()
	brightnessText := "Dark"
	if brightness > 0.5 {
		brightnessText = "Bright"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎨 Color Information",
		Color: info.Value(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏷️ Name", Value: info.Name, Inline: true},
			{Name: "🔢 Hex", Value: info.Hex, Inline: true},
			{Name: "🎯 RGB", Value: fmt.Sprintf("%d, %d, %d", info.R, info.G, info.B), Inline: true},
			{Name: "🌈 HSL", Value: fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", hue, saturation*100, lightness*100), Inline: true},
			{Name: "💡 Brightness", Value: fmt.Sprintf("%.1f%% (%s)", brightness*100, brightnessText), Inline: true},
			{Name: "🔄 Complementary", Value: info.Complementary(), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requesterName(i)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send color response", zap.Error(err))
	}
}
