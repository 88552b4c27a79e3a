package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const maxTranslateLength = 500

// languageCodes maps supported language names to MyMemory ISO codes.
var languageCodes = map[string]string{
	"english": "en", "spanish": "es", "french": "fr", "german": "de", "italian": "it",
	"portuguese": "pt", "russian": "ru", "japanese": "ja", "chinese": "zh-cn", "korean": "ko",
	"arabic": "ar", "hindi": "hi", "dutch": "nl", "swedish": "sv", "norwegian": "no",
	"danish": "da", "finnish": "fi", "polish": "pl", "turkish": "tr", "greek": "el",
	"hebrew": "he", "thai": "th", "vietnamese": "vi", "czech": "cs", "hungarian": "hu",
}

// languageChoices lists the supported target languages, capped at the
// 25-choice platform limit.
func languageChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := make([]string, 0, len(languageCodes))
	for name := range languageCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 25 {
		names = names[:25]
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  titleCase(name),
			Value: name,
		})
	}
	return choices
}

func (b *Bot) handleTranslate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	text := opts["text"].StringValue()

	target := "english"
	if opt, ok := opts["target_language"]; ok {
		target = strings.ToLower(opt.StringValue())
	}

	if len(text) > maxTranslateLength {
		if err := errorResponse(s, i, "❌ Text too long! Maximum 500 characters."); err != nil {
			b.logger.Error("Failed to send translate error", zap.Error(err))
		}
		return
	}

	targetCode, ok := languageCodes[target]
	if !ok {
		if err := errorResponse(s, i, fmt.Sprintf("❌ Unsupported language: `%s`", target)); err != nil {
			b.logger.Error("Failed to send translate error", zap.Error(err))
		}
		return
	}

	if err := deferResponse(s, i); err != nil {
		b.logger.Error("Failed to defer translate response", zap.Error(err))
		return
	}

	sourceCode := detectLanguage(text)

	ctx, cancel := context.WithTimeout(context.Background(), b.config.RequestTimeout)
	defer cancel()

	translation, err := b.translateClient.Translate(ctx, text, sourceCode, targetCode)
	if err != nil {
		b.logger.Warn("Translation failed",
			zap.String("pair", sourceCode+"|"+targetCode),
			zap.Error(err))
		if err := followupText(s, i, "❌ Translation failed. Try a different target language or simpler text."); err != nil {
			b.logger.Error("Failed to send translate error", zap.Error(err))
		}
		return
	}

	sourceName := sourceCode
	for name, code := range languageCodes {
		if code == sourceCode {
			sourceName = name
			break
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "🌐 Translation",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📝 Original", Value: "```" + text + "```", Inline: false},
			{Name: "✨ Translation", Value: "```" + translation.Text + "```", Inline: false},
			{Name: "🔍 Detected Language", Value: titleCase(sourceName), Inline: true},
			{Name: "🎯 Target Language", Value: titleCase(target), Inline: true},
			{Name: "🔧 Language Pair", Value: sourceCode + "→" + targetCode, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s • Powered by MyMemory", requesterName(i)),
		},
	}

	if err := followupEmbed(s, i, embed, nil); err != nil {
		b.logger.Error("Failed to send translate embed", zap.Error(err))
	}
}

// detectLanguage guesses the source language from script ranges first,
// then from common-word patterns, defaulting to English.
func detectLanguage(text string) string {
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
			return "zh-cn"
		case (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF):
			return "ja"
		case r >= 0xAC00 && r <= 0xD7AF:
			return "ko"
		case r >= 0x0600 && r <= 0x06FF:
			return "ar"
		case r >= 0x0900 && r <= 0x097F:
			return "hi"
		case r >= 0x0400 && r <= 0x04FF:
			return "ru"
		}
	}

	lower := strings.ToLower(text)

	patterns := []struct {
		code  string
		words []string
	}{
		{"fr", []string{"ici", "c'est", "les ", "des ", "dans", "avec", "pour", "sans", "sous", "entre"}},
		{"es", []string{"el ", "los ", "las ", "es ", "del ", "por", "para", "desde", "hasta", "donde"}},
		{"de", []string{"der ", "die ", "das ", "ist ", "und ", "mit ", "von ", "auf ", "für ", "nach"}},
		{"it", []string{"il ", "gli ", "è ", "di ", "del ", "con ", "per ", "da ", "su ", "fra"}},
		{"pt", []string{"o ", "os ", "as ", "é ", "do ", "da ", "com ", "em ", "no ", "na"}},
		{"en", []string{"the ", "and ", "is ", "are ", "you ", "this ", "that ", "with ", "for ", "from "}},
	}
	for _, p := range patterns {
		for _, w := range p.words {
			if strings.Contains(lower, w) {
				return p.code
			}
		}
	}

	switch {
	case strings.ContainsRune(lower, 'ñ'):
		return "es"
	case strings.ContainsRune(lower, 'ç'):
		return "fr"
	case strings.ContainsAny(lower, "äöü"):
		return "de"
	case strings.ContainsAny(lower, "àèù"):
		return "it"
	case strings.ContainsAny(lower, "ãõ"):
		return "pt"
	}
	return "en"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
