package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var eightBallResponses = []string{
	"🔮 It is certain",
	"🔮 It is decidedly so",
	"🔮 Without a doubt",
	"🔮 Yes definitely",
	"🔮 You may rely on it",
	"🔮 As I see it, yes",
	"🔮 Most likely",
	"🔮 Outlook good",
	"🔮 Yes",
	"🔮 Signs point to yes",
	"🔮 Reply hazy, try again",
	"🔮 Ask again later",
	"🔮 Better not tell you now",
	"🔮 Cannot predict now",
	"🔮 Concentrate and ask again",
	"🔮 Don't count on it",
	"🔮 My reply is no",
	"🔮 My sources say no",
	"🔮 Outlook not so good",
	"🔮 Very doubtful",
}

var quotes = []struct {
	Text   string
	Author string
}{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Innovation distinguishes between a leader and a follower.", "Steve Jobs"},
	{"Life is what happens to you while you're busy making other plans.", "John Lennon"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"It is during our darkest moments that we must focus to see the light.", "Aristotle"},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},
	{"Don't let yesterday take up too much of today.", "Will Rogers"},
	{"You learn more from failure than from success. Don't let it stop you. Failure builds character.", "Unknown"},
	{"Experience is a hard teacher because she gives the test first, the lesson afterwards.", "Vernon Law"},
	{"To live is the rarest thing in the world. Most people just exist.", "Oscar Wilde"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only impossible journey is the one you never begin.", "Tony Robbins"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
	{"Go confidently in the direction of your dreams. Live the life you have imagined.", "Henry David Thoreau"},
	{"When you reach the end of your rope, tie a knot in it and hang on.", "Franklin D. Roosevelt"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"Whether you think you can or you think you can't, you're right.", "Henry Ford"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"},
	{"Great things never come from comfort zones.", "Unknown"},
	{"Success doesn't just find you. You have to go out and get it.", "Unknown"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Don't stop when you're tired. Stop when you're done.", "Unknown"},
	{"Wake up with determination. Go to bed with satisfaction.", "Unknown"},
	{"Do something today that your future self will thank you for.", "Sean Patrick Flanery"},
	{"Little things make big days.", "Unknown"},
	{"It's going to be hard, but hard does not mean impossible.", "Unknown"},
	{"Don't wait for opportunity. Create it.", "Unknown"},
	{"Sometimes we're tested not to show our weaknesses, but to discover our strengths.", "Unknown"},
	{"The key to success is to focus on goals, not obstacles.", "Unknown"},
	{"Dream it. Believe it. Build it.", "Unknown"},
}

func (b *Bot) handleEightBall(s *discordgo.Session, i *discordgo.InteractionCreate) {
	question := optionMap(i)["question"].StringValue()

	embed := &discordgo.MessageEmbed{
		Title: "🎱 Magic 8-Ball",
		Color: colorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Question", Value: question, Inline: false},
			{Name: "Answer", Value: eightBallResponses[rand.Intn(len(eightBallResponses))], Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Asked by %s", requesterName(i)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send 8ball response", zap.Error(err))
	}
}

func (b *Bot) handleCoinFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	result := "Heads"
	emoji := "🪙"
	if rand.Intn(2) == 1 {
		result = "Tails"
		emoji = "🏮"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🪙 Coin Flip",
		Description: fmt.Sprintf("%s **%s!**", emoji, result),
		Color:       colorGold,
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send coinflip response", zap.Error(err))
	}
}

func (b *Bot) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sides := int64(6)
	if opt, ok := optionMap(i)["sides"]; ok {
		sides = opt.IntValue()
	}

	result := rand.Int63n(sides) + 1

	embed := &discordgo.MessageEmbed{
		Title:       "🎲 Dice Roll",
		Description: fmt.Sprintf("🎯 **%d** (out of %d)", result, sides),
		Color:       colorBlue,
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send roll response", zap.Error(err))
	}
}

func (b *Bot) handleChoose(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	var options []string
	for n := 1; n <= 6; n++ {
		if opt, ok := opts[fmt.Sprintf("choice%d", n)]; ok {
			if v := opt.StringValue(); v != "" {
				options = append(options, v)
			}
		}
	}

	chosen := options[rand.Intn(len(options))]

	embed := &discordgo.MessageEmbed{
		Title:       "🤔 Decision Maker",
		Description: fmt.Sprintf("🎯 I choose: **%s**", chosen),
		Color:       colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Options", Value: strings.Join(options, ", "), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requesterName(i)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send choose response", zap.Error(err))
	}
}

func (b *Bot) handleQuote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	quote := quotes[rand.Intn(len(quotes))]

	embed := &discordgo.MessageEmbed{
		Title:       "✨ Inspirational Quote",
		Description: fmt.Sprintf("*\"%s\"*", quote.Text),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: "— " + quote.Author, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", requesterName(i)),
		},
	}

	if err := embedResponse(s, i, embed); err != nil {
		b.logger.Error("Failed to send quote response", zap.Error(err))
	}
}
