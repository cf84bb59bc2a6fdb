package discord

import (
	"bytes"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/nao1215/lookupbot/internal/bot"
	"github.com/nao1215/lookupbot/internal/present"
)

// maxButtonsPerRow is Discord's limit on buttons in one action row.
const maxButtonsPerRow = 5

// Discord rejects embeds whose parts exceed these rune counts.
const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFieldNameLen   = 256
	maxFieldValueLen  = 1024
	maxFooterLen      = 2048
)

// ellipsis marks text cut by truncate.
const ellipsis = "…"

// truncate shortens s to at most limit runes, ending in an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + ellipsis
}

// toEmbed draws msg as a Discord embed.
func toEmbed(msg present.Message) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(msg.Title, maxTitleLen),
		Description: truncate(msg.Description, maxDescriptionLen),
		Color:       msg.Color,
	}

	if len(msg.Fields) > 0 {
		embed.Fields = lo.Map(msg.Fields, func(f present.Field, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{
				Name:   truncate(f.Name, maxFieldNameLen),
				Value:  truncate(f.Value, maxFieldValueLen),
				Inline: f.Inline,
			}
		})
	}
	if msg.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(msg.Footer, maxFooterLen)}
	}
	return embed
}

// toComponents turns actions into rows of primary buttons.
func toComponents(actions []present.Action) []discordgo.MessageComponent {
	if len(actions) == 0 {
		return nil
	}

	rows := lo.Chunk(actions, maxButtonsPerRow)
	return lo.Map(rows, func(row []present.Action, _ int) discordgo.MessageComponent {
		buttons := lo.Map(row, func(a present.Action, _ int) discordgo.MessageComponent {
			return discordgo.Button{
				Label:    a.Label,
				Style:    discordgo.PrimaryButton,
				CustomID: a.ID,
			}
		})
		return discordgo.ActionsRow{Components: buttons}
	})
}

// toMessageSend builds the request for a new message.
func toMessageSend(msg present.Message, file *present.Attachment) *discordgo.MessageSend {
	send := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{toEmbed(msg)},
		Components: toComponents(msg.Actions),
	}
	if file != nil {
		send.Files = []*discordgo.File{{
			Name:        file.Name,
			ContentType: file.ContentType,
			Reader:      bytes.NewReader(file.Data),
		}}
	}
	return send
}

// toInbound converts a Discord message. ok is false for messages written
// by bots or without an author.
func toInbound(m *discordgo.MessageCreate) (bot.Inbound, bool) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return bot.Inbound{}, false
	}
	return bot.Inbound{
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
	}, true
}

// toAction converts a button press. ok is false for other interactions.
func toAction(i *discordgo.InteractionCreate) (bot.Action, bool) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return bot.Action{}, false
	}

	var userID string
	switch {
	case i.Member != nil && i.Member.User != nil:
		userID = i.Member.User.ID
	case i.User != nil:
		userID = i.User.ID
	}

	return bot.Action{
		ChannelID: i.ChannelID,
		UserID:    userID,
		ID:        i.MessageComponentData().CustomID,
	}, true
}
