package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avitaltamir/rostui/internal/app"
	"github.com/avitaltamir/rostui/internal/config"
	"github.com/avitaltamir/rostui/internal/discord"
	"github.com/avitaltamir/rostui/internal/logging"
	"github.com/avitaltamir/rostui/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rostui",
		Short: "Browse a Discord guild as a ROS 2 graph",
		Long: `rostui shows a Discord guild through ros2 tooling: members are nodes,
text channels are topics, roles are packages and mentioned users are services.

The bot token and guild id come from --token/--guild, the TOKEN/GUILD
environment variables or a .env file in the working directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	config.Flags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Theme != "" && !theme.Select(cfg.Theme) {
		logger.Warn("unknown theme, using default", zap.String("theme", cfg.Theme))
	}

	provider, err := discord.New(cfg.Token, cfg.Guild, logger)
	if err != nil {
		return err
	}
	if err := provider.Open(); err != nil {
		return err
	}
	defer provider.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.Version = version
	m := app.New(app.Options{
		Provider:   provider,
		Logger:     logger,
		FetchLimit: cfg.FetchLimit,
		Context:    ctx,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
