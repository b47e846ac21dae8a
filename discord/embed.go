package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"raidwatch/domain"
)

const (
	embedColor = 0x6a5acd

	// Discord caps an embed field value at 1024 characters; cutting the
	// joined names at 1000 leaves room for the separator line.
	fieldRuneLimit = 1000

	emptyFieldBody = "_None_"
)

// classGlyphs decorates the section header per role or attendance status.
var classGlyphs = map[string]string{
	"Healer": "💚",
	"Tank":   "🛡️",
	"Melee":  "⚔️",
	"Ranged": "🏹",
	"Late":   "⏰",
}

const fallbackGlyph = "❔"

var sectionSeparator = strings.Repeat("─", 20)

// BuildSignupsEmbed renders a grouped roster as one embed with one field
// per class, classes in lexicographic order. Names are joined by newline,
// truncated at fieldRuneLimit runes with a trailing ellipsis.
func BuildSignupsEmbed(title string, grouped domain.GroupedRoster) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: title, Color: embedColor}
	for _, class := range grouped.Classes() {
		glyph, ok := classGlyphs[class]
		if !ok {
			glyph = fallbackGlyph
		}

		names := strings.Join(grouped[class], "\n")
		if names == "" {
			names = emptyFieldBody
		} else if runes := []rune(names); len(runes) > fieldRuneLimit {
			names = string(runes[:fieldRuneLimit]) + "…"
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", glyph, class),
			Value: names + "\n" + sectionSeparator,
		})
	}
	return embed
}
