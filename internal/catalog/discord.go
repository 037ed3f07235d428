package catalog

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	maxCommandNameLength        = 32
	maxCommandDescriptionLength = 100
)

// ApplicationCommands converts the catalog into slash command payloads
// suitable for discordgo's ApplicationCommandCreate / BulkOverwrite.
// Discord requires lower-case names and limits name and description length.
func (c *Catalog) ApplicationCommands() []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(c.records))
	for _, r := range c.records {
		commands = append(commands, &discordgo.ApplicationCommand{
			Type:        discordgo.ChatApplicationCommand,
			Name:        truncateRunes(strings.ToLower(r.Name), maxCommandNameLength),
			Description: truncateRunes(r.Description, maxCommandDescriptionLength),
		})
	}
	return commands
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
