package commands

import (
	"github.com/KirkDiggler/overlay-engine/internal/clipboard"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	overlayService "github.com/KirkDiggler/overlay-engine/internal/services/overlay"
	"github.com/spf13/cobra"
)

type importOptions struct {
	Clipboard bool
	Name      string
	Layer     int
}

func addImport(topLevel *cobra.Command) {
	o := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [pack files...]",
		Short: "Store pack documents, or an element from the system clipboard as a new pack",
		Example: `
overlay import raid.json boons.json
overlay import --clipboard --name shared
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.Clipboard && len(args) > 0 {
				return ovlerr.InvalidArgument("--clipboard takes no files")
			}
			if !o.Clipboard && len(args) == 0 {
				return ovlerr.InvalidArgument("nothing to import")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			var loaded []*element.Pack
			if o.Clipboard {
				e, err := clipboard.NewBridge(nil).Import()
				if err != nil {
					return err
				}
				pack := element.NewPack(o.Name)
				pack.Layer = o.Layer
				pack.Elements = []element.Element{*e}
				loaded = append(loaded, &pack)
			} else {
				loaded, err = overlayService.LoadFiles(ctx, args)
				if err != nil {
					return err
				}
			}

			for _, pack := range loaded {
				key, err := a.provider.OverlayService.AddPack(ctx, pack)
				if err != nil {
					return err
				}
				cmd.Printf("Imported %s as %s\n", bold(pack.DisplayName("pack")), key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&o.Clipboard, "clipboard", false, "Import the element on the system clipboard.")
	cmd.Flags().StringVar(&o.Name, "name", "clipboard", "Name of the pack created for a clipboard element.")
	cmd.Flags().IntVar(&o.Layer, "layer", 0, "Layer of the pack created for a clipboard element.")

	topLevel.AddCommand(cmd)
}
