package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/lookupbot/internal/bot"
	"github.com/nao1215/lookupbot/internal/config"
	"github.com/nao1215/lookupbot/internal/discord"
	"github.com/nao1215/lookupbot/internal/present"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve commands",
		Long: `Run connects to Discord and answers commands until interrupted.

Commands understood in chat (with the default "!" prefix):
  !search <text>   Look up the 10-digit number found in <text>
  !help            List commands
  !ping            Show gateway latency
  !stats           Show uptime, search count and reach

Environment:
  DISCORD_BOT_TOKEN   Bot token (required)
  LOOKUP_API_URL      Lookup API endpoint
  LOOKUP_API_KEY      Lookup API key
  LOOKUPBOT_PREFIX    Command prefix
  LOOKUPBOT_PROXY     SOCKS5 proxy for lookup requests (host:port)`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	dotEnvErr := config.LoadDotEnv()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg, slog.LevelInfo)
	slog.SetDefault(logger)

	if dotEnvErr != nil {
		logger.Warn("failed to load .env file, using environment variables", "error", dotEnvErr)
	}

	if err := cfg.ValidateForBot(); err != nil {
		logger.Error("configuration error", "error", err)
		return fmt.Errorf("configuration error: %w", err)
	}

	client, err := newLookupClient(cfg, logger)
	if err != nil {
		return err
	}

	session, err := discord.NewClient(cfg.Token,
		discord.WithLogger(logger),
		discord.WithStatus(presenceStatus(cfg)),
	)
	if err != nil {
		return err
	}

	presenter := present.New(
		present.WithPrefix(cfg.Prefix),
		present.WithBrand(cfg.Brand),
	)
	b := bot.New(client, session, session,
		bot.WithPrefix(cfg.Prefix),
		bot.WithMessageDelay(cfg.MessageDelay),
		bot.WithExportTTL(cfg.ExportTTL),
		bot.WithAutoDetect(cfg.AutoDetect),
		bot.WithPresenter(presenter),
		bot.WithLogger(logger),
	)

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting bot", "prefix", cfg.Prefix, "auto_detect", cfg.AutoDetect)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(ctx, b)
	})
	g.Go(func() error {
		return b.RunSweeper(ctx, cfg.SweepInterval)
	})

	if err := g.Wait(); err != nil {
		logger.Error("bot stopped", "error", err)
		return err
	}

	logger.Info("bot stopped", "searches", b.Metrics().Searches())
	return nil
}

// presenceStatus returns the presence text with the help command adjusted
// to the configured prefix.
func presenceStatus(cfg *config.Config) string {
	return strings.ReplaceAll(cfg.Status, config.DefaultPrefix+bot.CommandHelp, cfg.Prefix+bot.CommandHelp)
}
