// Package discord shares pack documents to a Discord channel as a file attachment,
// optionally with a rendered preview image.
package discord

import (
	"bytes"
	"context"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -destination=mock/mock.go -package=mockdiscord -source=publisher.go

// Sender is the part of a discordgo session the publisher needs
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// PreviewAttachment is the file name of the preview image
const PreviewAttachment = "preview.png"

// PublisherConfig holds configuration for the publisher
type PublisherConfig struct {
	Sender    Sender
	ChannelID string
	Now       func() time.Time
}

// Publisher posts packs to one channel
type Publisher struct {
	sender    Sender
	channelID string
	now       func() time.Time
}

// NewPublisher creates a publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil || cfg.Sender == nil {
		return nil, ovlerr.InvalidArgument("sender is required")
	}
	if cfg.ChannelID == "" {
		return nil, ovlerr.InvalidArgument("channel id is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Publisher{sender: cfg.Sender, channelID: cfg.ChannelID, now: now}, nil
}

// PublishInput is one share
type PublishInput struct {
	Pack *element.Pack

	// Note is posted as the message text
	Note string

	// Preview is an optional PNG attached and shown in the embed
	Preview io.Reader
}

// Publish posts the pack document and returns the created message
func (p *Publisher) Publish(ctx context.Context, input *PublishInput) (*discordgo.Message, error) {
	if input == nil || input.Pack == nil {
		return nil, ovlerr.InvalidArgument("pack is required")
	}

	data, err := document.Save(input.Pack)
	if err != nil {
		return nil, ovlerr.Wrap(err, "failed to encode pack")
	}

	name := input.Pack.DisplayName("pack")
	embed := NewEmbed().
		Title(name).
		Color(ColorPack).
		Timestamp(p.now()).
		Footer("schema " + document.SchemaV1).
		Stats(document.Summarize(input.Pack))

	msg := &discordgo.MessageSend{
		Content: input.Note,
		Files: []*discordgo.File{{
			Name:        FileName(name),
			ContentType: "application/json",
			Reader:      bytes.NewReader(data),
		}},
	}
	if input.Preview != nil {
		embed.Color(ColorPreview).Image(PreviewAttachment)
		msg.Files = append(msg.Files, &discordgo.File{
			Name:        PreviewAttachment,
			ContentType: "image/png",
			Reader:      input.Preview,
		})
	}
	msg.Embeds = []*discordgo.MessageEmbed{embed.Build()}

	sent, err := p.sender.ChannelMessageSendComplex(p.channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		return nil, ovlerr.Unavailable(err, "failed to send pack").WithMeta("channel_id", p.channelID)
	}
	log.Printf("[SHARE] Published pack %q to channel %s", name, p.channelID)
	return sent, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// FileName turns a pack name into an attachment name
func FileName(name string) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if base == "" {
		base = "pack"
	}
	return base + ".json"
}
