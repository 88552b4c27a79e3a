package bot

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"skycord/internal/config"
	"skycord/pkg/client"
)

// Bot owns the Discord session, the outbound API clients and the weather
// session store. Interactions are dispatched through the handler map.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *zap.Logger
	cron     *cron.Cron
	started  time.Time
	sessions *SessionStore
	drafts   *draftStore

	countMu       sync.Mutex
	commandCounts map[string]int

	weatherClient   *client.OpenWeatherClient
	coinGeckoClient *client.CoinGeckoClient
	translateClient *client.MyMemoryClient
	redditClient    *client.RedditClient

	commandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	registered      []*discordgo.ApplicationCommand
}

func New(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	clientCfg := client.ClientConfig{
		Timeout:        cfg.ClientTimeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		Multiplier:     cfg.RetryMultiplier,
		BreakerTimeout: cfg.BreakerTimeout,
		RatePerSecond:  cfg.RatePerSecond,
		RateBurst:      cfg.RateBurst,
	}

	b := &Bot{
		session:         session,
		config:          cfg,
		logger:          logger,
		cron:            cron.New(),
		sessions:        NewSessionStore(cfg.SessionTimeout, logger),
		drafts:          newDraftStore(cfg.SessionTimeout, logger),
		commandCounts:   make(map[string]int),
		weatherClient:   client.NewOpenWeatherClient(cfg.OpenWeatherAPIKey, clientCfg, logger),
		coinGeckoClient: client.NewCoinGeckoClient(clientCfg, logger),
		translateClient: client.NewMyMemoryClient(clientCfg, logger),
		redditClient:    client.NewRedditClient(clientCfg, logger),
	}

	b.commandHandlers = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"weather":    b.handleWeather,
		"crypto":     b.handleCrypto,
		"translate":  b.handleTranslate,
		"meme":       b.handleMeme,
		"8ball":      b.handleEightBall,
		"coinflip":   b.handleCoinFlip,
		"roll":       b.handleRoll,
		"choose":     b.handleChoose,
		"quote":      b.handleQuote,
		"ping":       b.handlePing,
		"botinfo":    b.handleBotInfo,
		"help":       b.handleHelp,
		"embed":      b.handleEmbedBuilder,
		"quickembed": b.handleQuickEmbed,
		"say":        b.handleSay,
		"announce":   b.handleAnnounce,
		"poll":       b.handlePoll,
		"embedinfo":  b.handleEmbedInfo,
		"serverinfo": b.handleServerInfo,
		"userinfo":   b.handleUserInfo,
		"avatar":     b.handleAvatar,
		"clear":      b.handleClear,
		"color":      b.handleColor,
		"timer":      b.handleTimer,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return b, nil
}

// Start opens the gateway connection, syncs slash commands and schedules
// the session sweeper.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway connection: %w", err)
	}
	b.started = time.Now()

	if err := b.syncCommands(); err != nil {
		b.session.Close()
		return err
	}

	if _, err := b.cron.AddFunc("@every 1m", func() {
		b.sessions.Sweep()
		b.drafts.Sweep()
	}); err != nil {
		b.session.Close()
		return fmt.Errorf("scheduling session sweeper: %w", err)
	}
	b.cron.Start()

	b.logger.Info("Bot started",
		zap.Int("commands", len(b.registered)),
		zap.Duration("session_timeout", b.config.SessionTimeout))
	return nil
}

// Stop unregisters commands when configured to, stops the sweeper and
// closes the gateway connection.
func (b *Bot) Stop() {
	ctx := b.cron.Stop()
	<-ctx.Done()

	if b.config.CleanupCommands {
		for _, cmd := range b.registered {
			if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.GuildID, cmd.ID); err != nil {
				b.logger.Warn("Failed to delete command",
					zap.String("command", cmd.Name),
					zap.Error(err))
			}
		}
	}

	if err := b.session.Close(); err != nil {
		b.logger.Warn("Failed to close discord session", zap.Error(err))
	}
	b.logger.Info("Bot stopped")
}

// Uptime reports how long the gateway connection has been open.
func (b *Bot) Uptime() time.Duration {
	if b.started.IsZero() {
		return 0
	}
	return time.Since(b.started)
}

// ActiveSessions reports the number of live weather sessions.
func (b *Bot) ActiveSessions() int {
	return b.sessions.Len()
}

// Guilds reports how many guilds the gateway session currently sees.
func (b *Bot) Guilds() int {
	return len(b.session.State.Guilds)
}

// CommandCounts returns a copy of the per-command invocation counters.
func (b *Bot) CommandCounts() map[string]int {
	b.countMu.Lock()
	defer b.countMu.Unlock()

	counts := make(map[string]int, len(b.commandCounts))
	for name, n := range b.commandCounts {
		counts[name] = n
	}
	return counts
}

func (b *Bot) countCommand(name string) {
	b.countMu.Lock()
	b.commandCounts[name]++
	b.countMu.Unlock()
}

func (b *Bot) syncCommands() error {
	commands := commandDefinitions()
	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	b.registered = registered
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Gateway ready",
		zap.String("username", r.User.Username),
		zap.Int("guilds", len(r.Guilds)))
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// A handler panic must not take down the gateway connection.
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Handler panicked",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		handler, ok := b.commandHandlers[name]
		if !ok {
			b.logger.Warn("Unknown command", zap.String("command", name))
			return
		}
		b.logger.Debug("Handling command",
			zap.String("command", name),
			zap.String("user", requesterName(i)))
		b.countCommand(name)
		handler(s, i)

	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(id, "weather:"):
			b.handleWeatherComponent(s, i)
		case strings.HasPrefix(id, "embed:"):
			b.handleEmbedComponent(s, i)
		}

	case discordgo.InteractionModalSubmit:
		b.handleEmbedModal(s, i)
	}
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	diceMin := float64(2)
	diceMax := float64(100)
	clearMin := float64(1)
	clearMax := float64(100)
	manageMessages := int64(discordgo.PermissionManageMessages)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "weather",
			Description: "Interactive weather information with forecasts, air quality, and more",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "location",
					Description: "City name, e.g. \"Lisbon\" or \"Portland, Oregon\"",
					Required:    true,
				},
			},
		},
		{
			Name:        "crypto",
			Description: "Get cryptocurrency price information",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "coin",
					Description: "Cryptocurrency name or symbol (e.g. \"bitcoin\", \"btc\")",
					Required:    true,
				},
			},
		},
		{
			Name:        "translate",
			Description: "Translate text to another language",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "The text to translate",
					Required:    true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "target_language",
					Description:  "Target language (e.g. \"spanish\", \"japanese\")",
					Required:     false,
					Autocomplete: false,
					Choices:      languageChoices(),
				},
			},
		},
		{
			Name:        "meme",
			Description: "Get a random meme from Reddit",
		},
		{
			Name:        "8ball",
			Description: "Ask the magic 8-ball a question",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "The question you want to ask the magic 8-ball",
					Required:    true,
				},
			},
		},
		{
			Name:        "coinflip",
			Description: "Flip a coin",
		},
		{
			Name:        "roll",
			Description: "Roll a dice with specified number of sides",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "sides",
					Description: "Number of sides on the dice (default: 6, max: 100)",
					Required:    false,
					MinValue:    &diceMin,
					MaxValue:    diceMax,
				},
			},
		},
		{
			Name:        "choose",
			Description: "Choose between multiple options",
			Options:     chooseOptions(),
		},
		{
			Name:        "quote",
			Description: "Get an inspirational quote",
		},
		{
			Name:        "embed",
			Description: "Interactive embed creator with buttons",
		},
		{
			Name:        "quickembed",
			Description: "Create a quick embed with just a description",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "content",
					Description: "The content for your embed",
					Required:    true,
				},
			},
		},
		{
			Name:        "say",
			Description: "Make the bot say something in an embed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "The message to say",
					Required:    true,
				},
			},
		},
		{
			Name:                     "announce",
			Description:              "Create an announcement embed",
			DefaultMemberPermissions: &manageMessages,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "announcement",
					Description: "The announcement message",
					Required:    true,
				},
			},
		},
		{
			Name:        "poll",
			Description: "Create a poll with reactions",
			Options:     pollOptions(),
		},
		{
			Name:        "embedinfo",
			Description: "Get information about an embed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message_id",
					Description: "The ID of the message containing the embed (optional)",
					Required:    false,
				},
			},
		},
		{
			Name:        "serverinfo",
			Description: "Display information about the current server",
		},
		{
			Name:        "userinfo",
			Description: "Display information about a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "The user to get information about (defaults to yourself)",
					Required:    false,
				},
			},
		},
		{
			Name:        "avatar",
			Description: "Display a user's avatar",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "The user whose avatar to display (defaults to yourself)",
					Required:    false,
				},
			},
		},
		{
			Name:                     "clear",
			Description:              "Clear a specified number of messages from the chat",
			DefaultMemberPermissions: &manageMessages,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of messages to delete (1-100, default: 10)",
					Required:    false,
					MinValue:    &clearMin,
					MaxValue:    clearMax,
				},
			},
		},
		{
			Name:        "color",
			Description: "Display information about a color",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "color",
					Description: "Color in hex (#FF0000), RGB (255,0,0), or name (red)",
					Required:    true,
				},
			},
		},
		{
			Name:        "timer",
			Description: "Start a countdown timer",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "Duration in seconds, or format like \"5m\", \"1h30m\", \"90s\"",
					Required:    true,
				},
			},
		},
		{
			Name:        "ping",
			Description: "Check the bot's latency and response time",
		},
		{
			Name:        "botinfo",
			Description: "Display information about the bot",
		},
		{
			Name:        "help",
			Description: "Display help information about bot commands",
		},
	}
}

func pollOptions() []*discordgo.ApplicationCommandOption {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "question",
			Description: "The poll question",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "option1",
			Description: "First option",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "option2",
			Description: "Second option",
			Required:    true,
		},
	}
	ordinals := []string{"Third", "Fourth", "Fifth"}
	for i, ordinal := range ordinals {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("option%d", i+3),
			Description: ordinal + " option (optional)",
			Required:    false,
		})
	}
	return options
}

func chooseOptions() []*discordgo.ApplicationCommandOption {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "choice1",
			Description: "First option",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "choice2",
			Description: "Second option",
			Required:    true,
		},
	}
	ordinals := []string{"Third", "Fourth", "Fifth", "Sixth"}
	for i, ordinal := range ordinals {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("choice%d", i+3),
			Description: ordinal + " option (optional)",
			Required:    false,
		})
	}
	return options
}

// optionMap flattens interaction options for lookup by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
