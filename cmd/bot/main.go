package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"raidwatch/discord"
	"raidwatch/internal"
	"raidwatch/observability"
	"raidwatch/raidhelper"
	"raidwatch/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and blocks until a shutdown signal.
// Keeping the logic out of main ensures deferred cleanup (closing the
// gateway session) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Raid-Helper client, services and handlers
	httpClient := &http.Client{Timeout: config.HTTPTimeout}
	fetcher := raidhelper.NewClient(logger, httpClient, config.RaidHelperBaseURL)
	signupService := services.NewSignupService(logger, fetcher)
	status := observability.NewStatusCollector()
	handler := discord.NewHandler(logger, config.CommandPrefix, signupService, status, config.ComparePause)

	// 3. Discord session
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return exitConfig, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	session.AddHandler(handler.OnMessageCreate)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("Logged in", "user", r.User.Username, "id", r.User.ID)
	})

	if err := session.Open(); err != nil {
		return exitRuntime, fmt.Errorf("opening gateway connection: %w", err)
	}
	defer func() {
		logger.Info("Closing Discord session...")
		_ = session.Close()
	}()

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutdown signal received")
	return exitOK, nil
}
