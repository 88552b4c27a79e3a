package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"skycord/internal/weather"
)

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		id          string
		wantSession string
		wantAction  string
		wantOK      bool
	}{
		{"weather:abc-123:hourly", "abc-123", "hourly", true},
		{"weather:abc-123:units", "abc-123", "units", true},
		{"weather:abc-123:air_quality", "abc-123", "air_quality", true},
		{"other:abc:def", "", "", false},
		{"weather:abc", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		session, action, ok := parseCustomID(tt.id)
		if ok != tt.wantOK || session != tt.wantSession || action != tt.wantAction {
			t.Errorf("parseCustomID(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.id, session, action, ok, tt.wantSession, tt.wantAction, tt.wantOK)
		}
	}
}

func TestViewEmbed(t *testing.T) {
	view := &weather.View{
		Title:       "⛅ Current Weather",
		Description: "📍 **Lisbon, PT**",
		Color:       0x2ECC71,
		Sections: []weather.Section{
			{Name: "🌡️ Temperature", Value: "**18°C**", Inline: true},
			{Name: "🚨 Weather Alert", Value: "Storm incoming", Inline: false},
		},
		Footer: "🕒 Lisbon local time: 23:13",
	}

	embed := viewEmbed(view)
	if embed.Title != view.Title || embed.Color != view.Color {
		t.Errorf("embed header = %q / %#x", embed.Title, embed.Color)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("embed has %d fields, want 2", len(embed.Fields))
	}
	if !embed.Fields[0].Inline || embed.Fields[1].Inline {
		t.Error("inline flags not carried over")
	}
	if embed.Footer == nil || embed.Footer.Text != view.Footer {
		t.Errorf("footer = %+v", embed.Footer)
	}
}

func TestWeatherComponents(t *testing.T) {
	store := NewSessionStore(time.Minute, zap.NewNop())
	snap, loc := testStoreSnapshot()
	session := store.Create(snap, loc, "user-1")
	session.Selection.Tab = weather.TabHourly

	rows := weatherComponents(session)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	row0 := rows[0].(discordgo.ActionsRow)
	if len(row0.Components) != 5 {
		t.Errorf("row 0 has %d buttons, want 5", len(row0.Components))
	}
	row1 := rows[1].(discordgo.ActionsRow)
	if len(row1.Components) != 2 {
		t.Errorf("row 1 has %d buttons, want 2", len(row1.Components))
	}

	unitButton := row0.Components[0].(discordgo.Button)
	if unitButton.Label != "°F" {
		t.Errorf("unit toggle label = %q, want °F while metric", unitButton.Label)
	}
	if unitButton.CustomID != "weather:"+session.ID+":units" {
		t.Errorf("unit toggle custom ID = %q", unitButton.CustomID)
	}

	hourlyButton := row0.Components[2].(discordgo.Button)
	if hourlyButton.Style != discordgo.PrimaryButton {
		t.Error("active tab button not highlighted")
	}
	currentButton := row0.Components[1].(discordgo.Button)
	if currentButton.Style != discordgo.SecondaryButton {
		t.Error("inactive tab button highlighted")
	}

	session.Selection.Units = weather.UnitsImperial
	rows = weatherComponents(session)
	unitButton = rows[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	if unitButton.Label != "°C" {
		t.Errorf("unit toggle label = %q, want °C while imperial", unitButton.Label)
	}
}
