package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nao1215/lookupbot/internal/lookup"
	"github.com/nao1215/lookupbot/internal/model"
	"github.com/nao1215/lookupbot/internal/normalize"
	"github.com/nao1215/lookupbot/internal/present"
)

const (
	// DefaultPrefix starts every command.
	DefaultPrefix = "!"

	// DefaultMessageDelay is the pause between consecutive result messages.
	DefaultMessageDelay = 500 * time.Millisecond

	// DefaultExportTTL is how long export buttons stay usable.
	DefaultExportTTL = 3 * time.Minute
)

// Messenger sends messages to the chat platform.
type Messenger interface {
	// Send posts msg to a channel and returns the new message's ID.
	Send(ctx context.Context, channelID string, msg present.Message) (string, error)

	// Edit replaces the content of a message sent earlier.
	Edit(ctx context.Context, channelID, messageID string, msg present.Message) error

	// Delete removes a message sent earlier.
	Delete(ctx context.Context, channelID, messageID string) error

	// SendFile posts msg with a file attached.
	SendFile(ctx context.Context, channelID string, msg present.Message, file present.Attachment) error
}

// Platform reports facts about the bot's connection.
type Platform interface {
	// Latency returns the last measured round trip to the platform.
	Latency() time.Duration

	// Counts returns how many guilds the bot is in and how many members
	// those guilds have in total.
	Counts() (guilds, users int)
}

// Inbound is a message received from a chat channel.
type Inbound struct {
	ChannelID string
	AuthorID  string
	Content   string
}

// Action is a button press received from a chat channel.
type Action struct {
	ChannelID string
	UserID    string
	ID        string
}

// Bot is the command orchestrator.
type Bot struct {
	searcher  lookup.Searcher
	messenger Messenger
	platform  Platform
	presenter *present.Presenter
	metrics   *Metrics
	exports   *exportStore
	logger    *slog.Logger

	prefix     string
	delay      time.Duration
	exportTTL  time.Duration
	autoDetect bool
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

// Option configures a Bot.
type Option func(*Bot)

// WithPrefix sets the command prefix.
func WithPrefix(prefix string) Option {
	return func(b *Bot) {
		if prefix != "" {
			b.prefix = prefix
		}
	}
}

// WithMessageDelay sets the pause between consecutive result messages.
func WithMessageDelay(d time.Duration) Option {
	return func(b *Bot) {
		if d >= 0 {
			b.delay = d
		}
	}
}

// WithExportTTL sets how long a result set can be exported.
func WithExportTTL(d time.Duration) Option {
	return func(b *Bot) {
		if d > 0 {
			b.exportTTL = d
		}
	}
}

// WithAutoDetect makes the bot search numbers found in ordinary messages.
func WithAutoDetect(enabled bool) Option {
	return func(b *Bot) {
		b.autoDetect = enabled
	}
}

// WithPresenter replaces the default Presenter.
func WithPresenter(p *present.Presenter) Option {
	return func(b *Bot) {
		if p != nil {
			b.presenter = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics sets the Metrics the bot records into.
func WithMetrics(m *Metrics) Option {
	return func(b *Bot) {
		if m != nil {
			b.metrics = m
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) {
		if now != nil {
			b.now = now
		}
	}
}

// WithSleep replaces the function used to wait between messages.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(b *Bot) {
		if sleep != nil {
			b.sleep = sleep
		}
	}
}

// New creates a Bot.
func New(searcher lookup.Searcher, messenger Messenger, platform Platform, opts ...Option) *Bot {
	b := &Bot{
		searcher:  searcher,
		messenger: messenger,
		platform:  platform,
		logger:    slog.Default(),
		prefix:    DefaultPrefix,
		delay:     DefaultMessageDelay,
		exportTTL: DefaultExportTTL,
		now:       time.Now,
		sleep:     sleepContext,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.presenter == nil {
		b.presenter = present.New(present.WithPrefix(b.prefix), present.WithClock(b.now))
	}
	if b.metrics == nil {
		b.metrics = NewMetrics(b.now())
	}
	b.exports = newExportStore(b.exportTTL)

	return b
}

// Metrics returns the bot's metrics.
func (b *Bot) Metrics() *Metrics {
	return b.metrics
}

// HandleMessage reacts to one inbound message. Messages that are neither a
// known command nor, with auto-detect on, contain a number are ignored.
func (b *Bot) HandleMessage(ctx context.Context, in Inbound) {
	name, arg, ok := ParseCommand(b.prefix, in.Content)
	if !ok {
		if b.autoDetect {
			if number, found := normalize.ExtractNumber(in.Content); found {
				b.search(ctx, in.ChannelID, number)
			}
		}
		return
	}

	switch name {
	case CommandSearch:
		number, err := ValidateQuery(arg)
		if err != nil {
			b.rejectQuery(ctx, in.ChannelID, err)
			return
		}
		b.search(ctx, in.ChannelID, number)
	case CommandHelp:
		b.send(ctx, in.ChannelID, b.presenter.Help())
	case CommandPing:
		b.send(ctx, in.ChannelID, b.presenter.Pong(b.platform.Latency()))
	case CommandStats:
		b.send(ctx, in.ChannelID, b.presenter.Stats(b.stats()))
	default:
		b.logger.Debug("unknown command ignored", "command", name)
	}
}

// rejectQuery answers a search whose argument failed validation.
func (b *Bot) rejectQuery(ctx context.Context, channelID string, err error) {
	if errors.Is(err, ErrMissingQuery) {
		b.send(ctx, channelID, b.presenter.Usage())
		return
	}
	b.send(ctx, channelID, b.presenter.InvalidInput())
}

// stats collects the data for the stats command.
func (b *Bot) stats() present.Stats {
	s := b.metrics.Snapshot(b.now())
	s.Guilds, s.Users = b.platform.Counts()
	return s
}

// search runs one lookup for a validated number and reports the outcome.
func (b *Bot) search(ctx context.Context, channelID, number string) {
	total := b.metrics.IncSearches()
	logger := b.logger.With("number", number, "channel", channelID)
	logger.Info("search started", "search", total)

	placeholderID, err := b.messenger.Send(ctx, channelID, b.presenter.Searching(number))
	if err != nil {
		logger.Error("failed to send placeholder", "error", err)
		return
	}

	result := b.searcher.Lookup(ctx, number)

	switch result.Kind {
	case model.KindError:
		logger.Warn("search failed", "error", result.Err)
		b.edit(ctx, channelID, placeholderID, b.presenter.Failure(number, result.Err))
	case model.KindEmpty:
		logger.Info("search found no records")
		b.edit(ctx, channelID, placeholderID, b.presenter.NoRecords(number))
	case model.KindRecords:
		logger.Info("search found records", "count", result.Count())
		b.deliver(ctx, logger, channelID, placeholderID, number, result.Records)
	}
}

// deliver replaces the placeholder with a summary followed by one message
// per record, pausing between messages.
func (b *Bot) deliver(ctx context.Context, logger *slog.Logger, channelID, placeholderID, number string, records []model.Record) {
	if err := b.messenger.Delete(ctx, channelID, placeholderID); err != nil {
		logger.Warn("failed to delete placeholder", "error", err)
	}

	setID := b.exports.Put(number, records, b.now())
	if _, err := b.messenger.Send(ctx, channelID, b.presenter.Summary(number, len(records), setID)); err != nil {
		logger.Error("failed to send summary", "error", err)
		return
	}

	for i, rec := range records {
		if err := b.sleep(ctx, b.delay); err != nil {
			logger.Warn("result delivery cancelled", "sent", i, "error", err)
			return
		}
		if _, err := b.messenger.Send(ctx, channelID, b.presenter.Detail(number, rec, i+1, len(records))); err != nil {
			logger.Error("failed to send result", "index", i+1, "error", err)
			return
		}
	}
}

// HandleAction reacts to a button press. Only export actions are known;
// anything else is ignored.
func (b *Bot) HandleAction(ctx context.Context, a Action) {
	format, setID, ok := present.ParseExportActionID(a.ID)
	if !ok {
		b.logger.Debug("unknown action ignored", "action", a.ID)
		return
	}

	set, ok := b.exports.Get(setID, b.now())
	if !ok {
		b.send(ctx, a.ChannelID, b.presenter.ExportExpired())
		return
	}

	logger := b.logger.With("number", set.number, "channel", a.ChannelID, "format", string(format))
	payload, err := b.presenter.Export(format, set.number, set.records)
	if err != nil {
		logger.Error("failed to render export", "error", err)
		return
	}

	if payload.Attachment == nil {
		b.send(ctx, a.ChannelID, payload.Message)
		return
	}
	if err := b.messenger.SendFile(ctx, a.ChannelID, payload.Message, *payload.Attachment); err != nil {
		logger.Error("failed to send export file", "bytes", len(payload.Attachment.Data), "error", err)
		return
	}
	logger.Info("export sent", "bytes", len(payload.Attachment.Data))
}

// send posts msg and logs a failure.
func (b *Bot) send(ctx context.Context, channelID string, msg present.Message) {
	if _, err := b.messenger.Send(ctx, channelID, msg); err != nil {
		b.logger.Error("failed to send message", "channel", channelID, "title", msg.Title, "error", err)
	}
}

// edit replaces a message and logs a failure.
func (b *Bot) edit(ctx context.Context, channelID, messageID string, msg present.Message) {
	if err := b.messenger.Edit(ctx, channelID, messageID, msg); err != nil {
		b.logger.Error("failed to edit message", "channel", channelID, "title", msg.Title, "error", err)
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
