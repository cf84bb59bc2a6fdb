package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/nao1215/lookupbot/internal/bot"
	"github.com/nao1215/lookupbot/internal/present"
)

// DefaultStatus is the "Watching ..." presence shown once connected.
const DefaultStatus = "Mobile Numbers | !help"

// Intents requested from the gateway. Message content is a privileged
// intent and must be enabled for the application in the developer portal.
const intents = discordgo.IntentGuilds |
	discordgo.IntentGuildMessages |
	discordgo.IntentDirectMessages |
	discordgo.IntentMessageContent

// ErrNoToken is returned by NewClient when the token is empty.
var ErrNoToken = errors.New("discord bot token is empty")

// Handler receives events from Discord. *bot.Bot implements it.
type Handler interface {
	HandleMessage(ctx context.Context, in bot.Inbound)
	HandleAction(ctx context.Context, a bot.Action)
}

// restAPI is the part of *discordgo.Session used to send messages.
type restAPI interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Client is a Discord connection.
type Client struct {
	session *discordgo.Session
	rest    restAPI
	logger  *slog.Logger
	status  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStatus sets the "Watching ..." presence text.
func WithStatus(status string) Option {
	return func(c *Client) {
		c.status = status
	}
}

// NewClient creates a Client. The gateway is not contacted until Run.
func NewClient(token string, opts ...Option) (*Client, error) {
	token = NormalizeToken(token)
	if token == "" {
		return nil, ErrNoToken
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = intents

	c := &Client{
		session: session,
		rest:    session,
		logger:  slog.Default(),
		status:  DefaultStatus,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run connects to the gateway, dispatches events to h and blocks until ctx
// is done. Each event is handled on its own goroutine by discordgo.
func (c *Client) Run(ctx context.Context, h Handler) error {
	removeReady := c.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.logger.Info("connected to discord", "user", r.User.Username, "guilds", len(r.Guilds))
		if c.status == "" {
			return
		}
		if err := s.UpdateWatchStatus(0, c.status); err != nil {
			c.logger.Warn("failed to set presence", "error", err)
		}
	})
	defer removeReady()

	removeMessage := c.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if in, ok := toInbound(m); ok {
			h.HandleMessage(ctx, in)
		}
	})
	defer removeMessage()

	removeInteraction := c.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		a, ok := toAction(i)
		if !ok {
			return
		}
		ack := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}
		if err := s.InteractionRespond(i.Interaction, ack, discordgo.WithContext(ctx)); err != nil {
			c.logger.Warn("failed to acknowledge interaction", "error", err)
		}
		h.HandleAction(ctx, a)
	})
	defer removeInteraction()

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to connect to discord: %w", err)
	}

	<-ctx.Done()

	if err := c.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	c.logger.Info("disconnected from discord")
	return nil
}

// Send implements bot.Messenger.
func (c *Client) Send(ctx context.Context, channelID string, msg present.Message) (string, error) {
	m, err := c.rest.ChannelMessageSendComplex(channelID, toMessageSend(msg, nil), discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return m.ID, nil
}

// Edit implements bot.Messenger.
func (c *Client) Edit(ctx context.Context, channelID, messageID string, msg present.Message) error {
	edit := discordgo.NewMessageEdit(channelID, messageID).
		SetEmbeds([]*discordgo.MessageEmbed{toEmbed(msg)})
	components := toComponents(msg.Actions)
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	edit.Components = &components

	if _, err := c.rest.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// Delete implements bot.Messenger.
func (c *Client) Delete(ctx context.Context, channelID, messageID string) error {
	if err := c.rest.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// SendFile implements bot.Messenger.
func (c *Client) SendFile(ctx context.Context, channelID string, msg present.Message, file present.Attachment) error {
	if _, err := c.rest.ChannelMessageSendComplex(channelID, toMessageSend(msg, &file), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send file %s: %w", file.Name, err)
	}
	return nil
}

// Latency implements bot.Platform.
func (c *Client) Latency() time.Duration {
	return c.session.HeartbeatLatency()
}

// Counts implements bot.Platform. Users are summed from guild member
// counts and include members of several guilds more than once.
func (c *Client) Counts() (guilds, users int) {
	state := c.session.State
	state.RLock()
	defer state.RUnlock()

	for _, g := range state.Guilds {
		users += g.MemberCount
	}
	return len(state.Guilds), users
}
