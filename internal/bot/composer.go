package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxDraftFields = 25

// embedPalette mirrors the classic Discord embed colors used for random
// picks.
var embedPalette = []int{
	0xE74C3C, // red
	0x3498DB, // blue
	0x2ECC71, // green
	0xFEE75C, // yellow
	0x9B59B6, // purple
	0xE67E22, // orange
	0xE91E63, // magenta
	0xF1C40F, // gold
	0x5865F2, // blurple
	0x206694, // dark blue
	0x1F8B4C, // dark green
}

var composerColors = map[string]int{
	"blue":   0x3498DB,
	"red":    0xE74C3C,
	"green":  0x2ECC71,
	"yellow": 0xFEE75C,
	"purple": 0x9B59B6,
	"orange": 0xE67E22,
	"gold":   0xF1C40F,
}

func randomEmbedColor() int {
	return embedPalette[rand.Intn(len(embedPalette))]
}

type draftField struct {
	Name  string
	Value string
}

// embedDraft is the in-progress state behind one /embed builder message.
type embedDraft struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Color       int
	Fields      []draftField
	ExpiresAt   time.Time
}

// draftStore holds live embed drafts keyed by ID, with the same locking
// discipline as SessionStore: pointers never leave the store.
type draftStore struct {
	mu     sync.Mutex
	drafts map[string]*embedDraft
	ttl    time.Duration
	logger *zap.Logger
}

func newDraftStore(ttl time.Duration, logger *zap.Logger) *draftStore {
	return &draftStore{
		drafts: make(map[string]*embedDraft),
		ttl:    ttl,
		logger: logger,
	}
}

func (d *draftStore) Create(ownerID string) embedDraft {
	draft := &embedDraft{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Color:     composerColors["blue"],
		ExpiresAt: time.Now().Add(d.ttl),
	}

	d.mu.Lock()
	d.drafts[draft.ID] = draft
	d.mu.Unlock()

	return *draft
}

// Update applies fn to the draft under the store lock and returns a copy.
// Only the draft owner may touch it.
func (d *draftStore) Update(id, requesterID string, fn func(*embedDraft)) (embedDraft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft, ok := d.drafts[id]
	if !ok {
		return embedDraft{}, errSessionExpired
	}
	if time.Now().After(draft.ExpiresAt) {
		delete(d.drafts, id)
		return embedDraft{}, errSessionExpired
	}
	if draft.OwnerID != "" && requesterID != draft.OwnerID {
		return embedDraft{}, errSessionNotOwner
	}

	fn(draft)
	draft.ExpiresAt = time.Now().Add(d.ttl)
	return *draft, nil
}

func (d *draftStore) Sweep() int {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for id, draft := range d.drafts {
		if now.After(draft.ExpiresAt) {
			delete(d.drafts, id)
			removed++
		}
	}
	if removed > 0 {
		d.logger.Debug("Swept expired embed drafts", zap.Int("removed", removed))
	}
	return removed
}

func composerID(draftID, action string) string {
	return fmt.Sprintf("embed:%s:%s", draftID, action)
}

func composerModalID(draftID, kind string) string {
	return fmt.Sprintf("embedmodal:%s:%s", draftID, kind)
}

func splitCustomID(id, scope string) (string, string, bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != scope {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// draftPanel is the builder status embed shown while composing.
func draftPanel(draft embedDraft) *discordgo.MessageEmbed {
	title := draft.Title
	if title == "" {
		title = "Not set"
	}
	description := draft.Description
	if description == "" {
		description = "Not set"
	} else if len(description) > 50 {
		description = description[:50] + "..."
	}

	return &discordgo.MessageEmbed{
		Title:       "🛠️ Embed Creator",
		Description: "Use the buttons below to create your custom embed!",
		Color:       composerColors["blue"],
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📝 Title", Value: title, Inline: true},
			{Name: "📄 Description", Value: description, Inline: true},
			{Name: "🎨 Color", Value: fmt.Sprintf("#%06X", draft.Color), Inline: true},
			{Name: "📋 Fields", Value: fmt.Sprintf("%d field(s)", len(draft.Fields)), Inline: true},
		},
	}
}

// buildDraftEmbed turns a draft into the embed it describes.
func buildDraftEmbed(draft embedDraft) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       draft.Title,
		Description: draft.Description,
		Color:       draft.Color,
	}
	for _, field := range draft.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: true,
		})
	}
	return embed
}

func composerComponents(draft embedDraft) []discordgo.MessageComponent {
	button := func(label, emoji, action string, style discordgo.ButtonStyle) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: composerID(draft.ID, action),
			Emoji:    &discordgo.ComponentEmoji{Name: emoji},
		}
	}

	colorOption := func(label, value, emoji string) discordgo.SelectMenuOption {
		return discordgo.SelectMenuOption{
			Label: label,
			Value: value,
			Emoji: &discordgo.ComponentEmoji{Name: emoji},
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("Set Title", "📝", "title", discordgo.PrimaryButton),
				button("Set Description", "📄", "description", discordgo.PrimaryButton),
				button("Add Field", "➕", "field", discordgo.SuccessButton),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("Send Embed", "🚀", "send", discordgo.SuccessButton),
				button("Preview", "👀", "preview", discordgo.SecondaryButton),
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    composerID(draft.ID, "color"),
					Placeholder: "Choose a color...",
					Options: []discordgo.SelectMenuOption{
						colorOption("Blue", "blue", "🔵"),
						colorOption("Red", "red", "🔴"),
						colorOption("Green", "green", "🟢"),
						colorOption("Yellow", "yellow", "🟡"),
						colorOption("Purple", "purple", "🟣"),
						colorOption("Orange", "orange", "🟠"),
						colorOption("Gold", "gold", "🟨"),
						colorOption("Random", "random", "🎲"),
					},
				},
			},
		},
	}
}

func (b *Bot) handleEmbedBuilder(s *discordgo.Session, i *discordgo.InteractionCreate) {
	draft := b.drafts.Create(requesterID(i))

	if err := componentResponse(s, i, draftPanel(draft), composerComponents(draft)); err != nil {
		b.logger.Error("Failed to send embed builder", zap.Error(err))
	}
}

// handleEmbedComponent routes button presses and the color select on a
// builder message.
func (b *Bot) handleEmbedComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	draftID, action, ok := splitCustomID(data.CustomID, "embed")
	if !ok {
		return
	}

	mutate := func(*embedDraft) {}
	if action == "color" && len(data.Values) > 0 {
		choice := data.Values[0]
		mutate = func(d *embedDraft) {
			if choice == "random" {
				d.Color = randomEmbedColor()
				return
			}
			if value, ok := composerColors[choice]; ok {
				d.Color = value
			}
		}
	}

	draft, err := b.drafts.Update(draftID, requesterID(i), mutate)
	switch {
	case err == errSessionNotOwner:
		if err := errorResponse(s, i, "❌ Only the person who ran `/embed` can use this builder."); err != nil {
			b.logger.Error("Failed to send builder owner notice", zap.Error(err))
		}
		return
	case err != nil:
		if err := errorResponse(s, i, "⏰ This embed builder has expired. Run `/embed` to start over."); err != nil {
			b.logger.Error("Failed to send builder expiry notice", zap.Error(err))
		}
		return
	}

	switch action {
	case "title":
		b.openComposerModal(s, i, draft.ID, "title", "Set Title", draft.Title)
	case "description":
		b.openComposerModal(s, i, draft.ID, "description", "Set Description", draft.Description)
	case "field":
		if len(draft.Fields) >= maxDraftFields {
			if err := errorResponse(s, i, "❌ Embeds can hold at most 25 fields."); err != nil {
				b.logger.Error("Failed to send field cap notice", zap.Error(err))
			}
			return
		}
		b.openFieldModal(s, i, draft.ID)
	case "send":
		if err := contentEmbedResponse(s, i, "Here's your embed:", buildDraftEmbed(draft)); err != nil {
			b.logger.Error("Failed to send built embed", zap.Error(err))
		}
	case "preview":
		b.updateComposerMessage(s, i, buildDraftEmbed(draft), composerComponents(draft))
	case "color":
		b.updateComposerMessage(s, i, draftPanel(draft), composerComponents(draft))
	}
}

func (b *Bot) openComposerModal(s *discordgo.Session, i *discordgo.InteractionCreate, draftID, kind, title, current string) {
	style := discordgo.TextInputShort
	maxLength := 256
	if kind == "description" {
		style = discordgo.TextInputParagraph
		maxLength = 4000
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: composerModalID(draftID, kind),
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "value",
							Label:     title,
							Style:     style,
							Value:     current,
							MaxLength: maxLength,
							Required:  false,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("Failed to open builder modal",
			zap.String("kind", kind),
			zap.Error(err))
	}
}

func (b *Bot) openFieldModal(s *discordgo.Session, i *discordgo.InteractionCreate, draftID string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: composerModalID(draftID, "field"),
			Title:    "Add Field",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "name",
							Label:       "Field Name",
							Style:       discordgo.TextInputShort,
							Placeholder: "Enter field name...",
							MaxLength:   256,
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "content",
							Label:       "Field Value",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Enter field content...",
							MaxLength:   1024,
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("Failed to open field modal", zap.Error(err))
	}
}

// handleEmbedModal applies a submitted modal to its draft and refreshes
// the builder message.
func (b *Bot) handleEmbedModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	draftID, kind, ok := splitCustomID(data.CustomID, "embedmodal")
	if !ok {
		return
	}

	draft, err := b.drafts.Update(draftID, requesterID(i), func(d *embedDraft) {
		switch kind {
		case "title":
			d.Title = modalTextValue(data, 0)
		case "description":
			d.Description = modalTextValue(data, 0)
		case "field":
			name := modalTextValue(data, 0)
			value := modalTextValue(data, 1)
			if name != "" && value != "" && len(d.Fields) < maxDraftFields {
				d.Fields = append(d.Fields, draftField{Name: name, Value: value})
			}
		}
	})
	if err != nil {
		if err := errorResponse(s, i, "⏰ This embed builder has expired. Run `/embed` to start over."); err != nil {
			b.logger.Error("Failed to send builder expiry notice", zap.Error(err))
		}
		return
	}

	b.updateComposerMessage(s, i, draftPanel(draft), composerComponents(draft))
}

func (b *Bot) updateComposerMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		b.logger.Error("Failed to update builder message", zap.Error(err))
	}
}

func modalTextValue(data discordgo.ModalSubmitInteractionData, index int) string {
	if index >= len(data.Components) {
		return ""
	}
	row, ok := data.Components[index].(*discordgo.ActionsRow)
	if !ok || len(row.Components) == 0 {
		return ""
	}
	input, ok := row.Components[0].(*discordgo.TextInput)
	if !ok {
		return ""
	}
	return input.Value
}

func (b *Bot) handleQuickEmbed(s *discordgo.Session, i *discordgo.InteractionCreate) {
	content := optionMap(i)["content"].StringValue()

	embed := &discordgo.MessageEmbed{
		Description: content,
		Color:       randomEmbedColor(),
	}
	if u := requesterUser(i); u != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    u.Username,
			IconURL: u.AvatarURL(""),
		}
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send quick embed", zap.Error(err))
	}
}

func (b *Bot) handleSay(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := optionMap(i)["message"].StringValue()

	embed := &discordgo.MessageEmbed{
		Description: message,
		Color:       colorBlurple,
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send say embed", zap.Error(err))
	}
}

func (b *Bot) handleAnnounce(s *discordgo.Session, i *discordgo.InteractionCreate) {
	announcement := optionMap(i)["announcement"].StringValue()

	embed := &discordgo.MessageEmbed{
		Title:       "📢 Announcement",
		Description: announcement,
		Color:       colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Announced by %s", requesterName(i)),
		},
	}

	authorName := "Announcement"
	if guild, err := s.State.Guild(i.GuildID); err == nil {
		authorName = guild.Name
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    authorName,
			IconURL: guild.IconURL("128"),
		}
	}

	if err := contentEmbedResponse(s, i, "@everyone", embed); err != nil {
		b.logger.Error("Failed to send announcement", zap.Error(err))
	}
}

var pollEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣"}

// pollOptionLines formats poll options with their reaction emoji.
func pollOptionLines(options []string) string {
	lines := make([]string, len(options))
	for i, option := range options {
		lines[i] = pollEmojis[i] + " " + option
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) handlePoll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	question := opts["question"].StringValue()
	options := []string{opts["option1"].StringValue(), opts["option2"].StringValue()}
	for _, name := range []string{"option3", "option4", "option5"} {
		if opt, ok := opts[name]; ok {
			if value := opt.StringValue(); value != "" {
				options = append(options, value)
			}
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Poll",
		Description: fmt.Sprintf("**%s**", question),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Options", Value: pollOptionLines(options), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Poll created by %s", requesterName(i)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send poll", zap.Error(err))
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		b.logger.Error("Failed to fetch poll message", zap.Error(err))
		return
	}
	for idx := range options {
		if err := s.MessageReactionAdd(msg.ChannelID, msg.ID, pollEmojis[idx]); err != nil {
			b.logger.Warn("Failed to add poll reaction",
				zap.String("emoji", pollEmojis[idx]),
				zap.Error(err))
		}
	}
}

func (b *Bot) handleEmbedInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	var msg *discordgo.Message
	if opt, ok := opts["message_id"]; ok && opt.StringValue() != "" {
		m, err := s.ChannelMessage(i.ChannelID, opt.StringValue())
		if err != nil {
			if err := errorResponse(s, i, "❌ Message not found!"); err != nil {
				b.logger.Error("Failed to send embedinfo error", zap.Error(err))
			}
			return
		}
		msg = m
	} else {
		msgs, err := s.ChannelMessages(i.ChannelID, 50, "", "", "")
		if err != nil {
			if err := errorResponse(s, i, "❌ Couldn't read recent messages in this channel."); err != nil {
				b.logger.Error("Failed to send embedinfo error", zap.Error(err))
			}
			return
		}
		for _, m := range msgs {
			if len(m.Embeds) > 0 {
				msg = m
				break
			}
		}
		if msg == nil {
			if err := errorResponse(s, i, "❌ No embeds found in recent messages!"); err != nil {
				b.logger.Error("Failed to send embedinfo error", zap.Error(err))
			}
			return
		}
	}

	if len(msg.Embeds) == 0 {
		if err := errorResponse(s, i, "❌ That message doesn't contain an embed!"); err != nil {
			b.logger.Error("Failed to send embedinfo error", zap.Error(err))
		}
		return
	}

	if err := embedResponse(s, i, embedSummary(msg)); err != nil {
		b.logger.Error("Failed to send embedinfo response", zap.Error(err))
	}
}

// embedSummary describes the first embed on a message.
func embedSummary(msg *discordgo.Message) *discordgo.MessageEmbed {
	target := msg.Embeds[0]

	title := target.Title
	if title == "" {
		title = "None"
	}
	description := target.Description
	if description == "" {
		description = "None"
	} else if len(description) > 100 {
		description = description[:100] + "..."
	}

	info := &discordgo.MessageEmbed{
		Title: "📋 Embed Information",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Title", Value: title, Inline: false},
			{Name: "Description", Value: description, Inline: false},
			{Name: "Color", Value: fmt.Sprintf("#%06X", target.Color), Inline: true},
			{Name: "Fields", Value: fmt.Sprintf("%d", len(target.Fields)), Inline: true},
			{Name: "Message ID", Value: msg.ID, Inline: true},
		},
	}
	if target.Author != nil {
		info.Fields = append(info.Fields, &discordgo.MessageEmbedField{
			Name: "Author", Value: target.Author.Name, Inline: true,
		})
	}
	if target.Footer != nil {
		info.Fields = append(info.Fields, &discordgo.MessageEmbedField{
			Name: "Footer", Value: target.Footer.Text, Inline: true,
		})
	}
	return info
}
