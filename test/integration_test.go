package test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"raidwatch/discord"
	"raidwatch/mocks"
	"raidwatch/observability"
	"raidwatch/raidhelper"
	"raidwatch/services"
)

// fakeRaidHelper serves canned event payloads the way the real API does:
// JSON on a known id, 404 on everything else.
func fakeRaidHelper(t *testing.T, events map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for id, body := range events {
			if r.URL.Path == "/api/v2/events/"+id {
				_, _ = w.Write([]byte(body))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func newHandler(t *testing.T, baseURL string) *discord.Handler {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	client := raidhelper.NewClient(log, &http.Client{Timeout: time.Second}, baseURL)
	service := services.NewSignupService(log, client)
	return discord.NewHandler(log, "!", service, observability.NewStatusCollector(), time.Millisecond)
}

func message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "channel-1",
		Content:   content,
		Author:    &discordgo.User{ID: "user-1"},
	}}
}

func TestScenario_SignupsNotFound(t *testing.T) {
	req := require.New(t)
	server := fakeRaidHelper(t, nil)
	handler := newHandler(t, server.URL)

	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	var sent string
	session.EXPECT().
		ChannelMessageSend("channel-1", gomock.Any()).
		DoAndReturn(func(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			sent = content
			return &discordgo.Message{}, nil
		}).
		Times(1)

	handler.Dispatch(context.Background(), session, message("!signups 42"))
	req.Contains(sent, "`42`")
}

func TestScenario_SignupsGroupedEmbed(t *testing.T) {
	req := require.New(t)
	server := fakeRaidHelper(t, map[string]string{
		"1234567890": `{
			"title": "Raid Night",
			"signUps": [
				{"userId": "a", "name": "Alice", "className": "Healer"},
				{"userId": "b", "name": "Bob", "className": "Tank"},
				{"userId": "c", "name": "Clara", "className": "Tentative"}
			]
		}`,
	})
	handler := newHandler(t, server.URL)

	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	var embed *discordgo.MessageEmbed
	session.EXPECT().
		ChannelMessageSendEmbed("channel-1", gomock.Any()).
		DoAndReturn(func(channelID string, e *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed = e
			return &discordgo.Message{}, nil
		})

	handler.Dispatch(context.Background(), session, message("!signups https://raid-helper.dev/event/1234567890"))

	req.NotNil(embed)
	req.Equal("Active Signups", embed.Title)
	req.Len(embed.Fields, 2)
	req.Equal("💚 Healer", embed.Fields[0].Name)
	req.Equal("🛡️ Tank", embed.Fields[1].Name)
}

func TestScenario_CompareDisjointEvents(t *testing.T) {
	req := require.New(t)
	server := fakeRaidHelper(t, map[string]string{
		"1111111111": `{"signUps": [
			{"userId": "a", "name": "Alice", "className": "Healer"},
			{"userId": "b", "name": "Bob", "className": "Tank"}
		]}`,
		"2222222222": `{"signUps": [
			{"userId": "c", "name": "Clara", "className": "Melee"},
			{"userId": "d", "name": "Dan", "className": "Ranged"}
		]}`,
	})
	handler := newHandler(t, server.URL)

	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	var sentEmbeds []*discordgo.MessageEmbed
	capture := func(channelID string, e *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
		sentEmbeds = append(sentEmbeds, e)
		return &discordgo.Message{}, nil
	}
	gomock.InOrder(
		session.EXPECT().ChannelMessageSendEmbed("channel-1", gomock.Any()).DoAndReturn(capture),
		session.EXPECT().ChannelMessageSendEmbed("channel-1", gomock.Any()).DoAndReturn(capture),
	)

	handler.Dispatch(context.Background(), session, message("!compare 1111111111 2222222222"))

	req.Len(sentEmbeds, 2)
	req.Empty(sentEmbeds[0].Fields)

	// The only-one embed covers the union of both rosters.
	onlyOne := sentEmbeds[1]
	req.Len(onlyOne.Fields, 4)
	names := make([]string, 0, len(onlyOne.Fields))
	for _, field := range onlyOne.Fields {
		names = append(names, field.Name)
	}
	req.Equal([]string{"💚 Healer", "⚔️ Melee", "🏹 Ranged", "🛡️ Tank"}, names)
}
