//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../mocks/mock_session.go -package=mocks

// Package discord adapts the signup commands to the Discord gateway.
// It owns no business logic: commands are parsed here and delegated to the
// signup service, and every failure ends as a single chat message.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	apperrors "raidwatch/errors"
	"raidwatch/observability"
	"raidwatch/services"
)

// Session is the slice of the Discord session the handlers actually use.
// *discordgo.Session satisfies it; tests substitute a mock.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	HeartbeatLatency() time.Duration
}

type Handler struct {
	log          *slog.Logger
	prefix       string
	signups      services.ISignupService
	status       *observability.StatusCollector
	comparePause time.Duration
}

func NewHandler(
	log *slog.Logger,
	prefix string,
	signups services.ISignupService,
	status *observability.StatusCollector,
	comparePause time.Duration,
) *Handler {
	return &Handler{
		log:          log,
		prefix:       prefix,
		signups:      signups,
		status:       status,
		comparePause: comparePause,
	}
}

// OnMessageCreate is the discordgo entrypoint registered on the session.
func (h *Handler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.Dispatch(context.Background(), s, m)
}

// Dispatch parses one prefix command and runs it to completion. Command
// failures are converted to a single chat message; none is fatal to the
// process.
func (h *Handler) Dispatch(ctx context.Context, s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, h.prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, h.prefix))
	if len(fields) == 0 {
		return
	}
	command, args := fields[0], fields[1:]

	log := h.log.With("invocation_id", uuid.NewString(), "command", command)

	var err error
	switch command {
	case "signups":
		err = h.handleSignups(ctx, s, m.ChannelID, args, log)
	case "compare":
		err = h.handleCompare(ctx, s, m.ChannelID, args, log)
	case "ping":
		err = h.handlePing(s, m.ChannelID)
	default:
		return
	}

	if err != nil {
		h.status.IncrFailed()
		log.Error("Command failed", "err", err)
		return
	}
	h.status.IncrHandled()
}

func (h *Handler) handleSignups(ctx context.Context, s Session, channelID string, args []string, log *slog.Logger) error {
	if len(args) != 1 {
		_, err := s.ChannelMessageSend(channelID, fmt.Sprintf("Usage: %ssignups <eventIdOrUrl>", h.prefix))
		return err
	}

	result, err := h.signups.ActiveSignups(ctx, args[0])
	switch {
	case errors.Is(err, apperrors.ErrEmptyRoster):
		// An empty roster is an answer, not a fetch error.
		_, sendErr := s.ChannelMessageSend(channelID, "No active signups found for this event.")
		return sendErr
	case err != nil:
		log.Warn("Fetch failed", "event_id", result.EventID, "err", err)
		_, _ = s.ChannelMessageSend(channelID, fmt.Sprintf("❌ Could not fetch event details for ID `%s`.", result.EventID))
		return err
	}

	_, err = s.ChannelMessageSendEmbed(channelID, BuildSignupsEmbed("Active Signups", result.Grouped))
	return err
}

func (h *Handler) handleCompare(ctx context.Context, s Session, channelID string, args []string, log *slog.Logger) error {
	if len(args) != 2 {
		_, err := s.ChannelMessageSend(channelID, fmt.Sprintf("Usage: %scompare <eventIdOrUrl1> <eventIdOrUrl2>", h.prefix))
		return err
	}

	result, err := h.signups.Compare(ctx, args[0], args[1])
	if err != nil {
		log.Warn("Fetch failed", "first_id", result.FirstID, "second_id", result.SecondID, "err", err)
		_, _ = s.ChannelMessageSend(channelID, "❌ Could not fetch one or both event details.")
		return err
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, BuildSignupsEmbed("✅ Signed up for BOTH events", result.Both)); err != nil {
		return err
	}

	// Pause between the two embeds so the gateway rate limiter stays quiet.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(h.comparePause):
	}

	_, err = s.ChannelMessageSendEmbed(channelID, BuildSignupsEmbed("☑️ Signed up for ONLY ONE event", result.OnlyOne))
	return err
}

func (h *Handler) handlePing(s Session, channelID string) error {
	snapshot := h.status.Snapshot()
	content := fmt.Sprintf("Pong! latency=%dms mem=%dMB goroutines=%d up=%s",
		s.HeartbeatLatency().Milliseconds(),
		snapshot.RSSMb,
		snapshot.Goroutines,
		snapshot.Uptime.Round(time.Second),
	)
	_, err := s.ChannelMessageSend(channelID, content)
	return err
}
