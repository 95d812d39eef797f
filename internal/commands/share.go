package commands

import (
	"bytes"

	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/share/discord"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
)

type shareOptions struct {
	Note    string
	Preview bool
	previewOptions
}

func addShare(topLevel *cobra.Command) {
	o := &shareOptions{}

	cmd := &cobra.Command{
		Use:   "share <key>",
		Short: "Post a stored pack to the configured Discord channel",
		Long:  "Post a stored pack to the Discord channel in DISCORD_CHANNEL_ID using the bot token in DISCORD_TOKEN.",
		Example: `
overlay share 6f1c... --note "raid layout v2"
overlay share 6f1c... --preview --at 8s
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.cfg.RequireDiscord(); err != nil {
				return ovlerr.WrapWithCode(err, ovlerr.CodeInvalidArgument, "share is not configured")
			}

			record, err := a.provider.PackRepository.Get(ctx, args[0])
			if err != nil {
				return err
			}

			input := &discord.PublishInput{Pack: record.Pack, Note: o.Note}
			if o.Preview {
				var buf bytes.Buffer
				if err := renderPackPreview(a, args[0], &o.previewOptions, &buf); err != nil {
					return err
				}
				input.Preview = &buf
			}

			dg, err := discordgo.New("Bot " + a.cfg.Discord.Token)
			if err != nil {
				return ovlerr.Wrap(err, "failed to create Discord session")
			}
			publisher, err := discord.NewPublisher(&discord.PublisherConfig{
				Sender:    dg,
				ChannelID: a.cfg.Discord.ChannelID,
			})
			if err != nil {
				return err
			}

			msg, err := publisher.Publish(ctx, input)
			if err != nil {
				return err
			}
			cmd.Printf("Shared %s as message %s\n", bold(record.Pack.DisplayName("pack")), msg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.Note, "note", "", "Message posted with the pack.")
	cmd.Flags().BoolVar(&o.Preview, "preview", false, "Attach a rendered preview image.")
	o.previewOptions.addFlags(cmd)

	topLevel.AddCommand(cmd)
}

// renderPackPreview renders only the shared pack
func renderPackPreview(a *app, key string, o *previewOptions, buf *bytes.Buffer) error {
	svc := a.provider.OverlayService
	for _, pack := range svc.Packs() {
		if k, ok := svc.Key(pack); ok && k != key {
			pack.Enabled = false
		}
	}
	surface, err := renderPreview(svc, o)
	if err != nil {
		return err
	}
	return surface.EncodePNG(buf)
}
