package discord

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorPack    = 0x7289da
	ColorPreview = 0x00aa88
)

// EmbedBuilder provides a fluent API for building pack embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Image points the embed image at an attachment of the same message
func (b *EmbedBuilder) Image(attachment string) *EmbedBuilder {
	b.embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + attachment}
	return b
}

func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Stats adds one inline field per pack statistic
func (b *EmbedBuilder) Stats(stats document.Stats) *EmbedBuilder {
	b.Field("Elements", fmt.Sprint(stats.Elements), true)
	b.Field("Depth", fmt.Sprint(stats.Depth), true)
	b.Field("Conditions", fmt.Sprint(stats.Conditions), true)

	if len(stats.ByType) == 0 {
		return b
	}
	kinds := make([]string, 0, len(stats.ByType))
	for t, n := range stats.ByType {
		kinds = append(kinds, fmt.Sprintf("%s × %d", t, n))
	}
	sort.Strings(kinds)
	return b.Field("Kinds", strings.Join(kinds, "\n"), false)
}

func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}
