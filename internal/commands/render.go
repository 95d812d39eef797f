package commands

import (
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/render/raster"
	overlayService "github.com/KirkDiggler/overlay-engine/internal/services/overlay"
	"github.com/KirkDiggler/overlay-engine/internal/simulate"
	"github.com/spf13/cobra"
)

var backdrop = draw.Color{0.08, 0.08, 0.1, 1}

type previewOptions struct {
	At          time.Duration
	Seed        uint64
	Width       int
	Height      int
	Transparent bool
}

func (o *previewOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&o.At, "at", 5*time.Second, "Simulated time to render.")
	cmd.Flags().Uint64Var(&o.Seed, "seed", 1, "Seed for the simulated buff and cooldown phases.")
	cmd.Flags().IntVar(&o.Width, "width", 1280, "Image width in pixels.")
	cmd.Flags().IntVar(&o.Height, "height", 720, "Image height in pixels.")
	cmd.Flags().BoolVar(&o.Transparent, "transparent", false, "Leave the background transparent.")
}

// renderPreview draws the hosted packs as they look at the simulated time
func renderPreview(svc overlayService.Service, o *previewOptions) (*raster.Surface, error) {
	surface, err := raster.NewSurface(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	if !o.Transparent {
		surface.Fill(backdrop)
	}

	sim := simulate.New(simulate.DefaultScenario(), simulate.NewSeededRoller(o.Seed))
	svc.Update(sim.Snapshot(uint32(o.At.Milliseconds())))
	svc.Render(surface, surface.Size())
	return surface, nil
}

func addRender(topLevel *cobra.Command) {
	o := &previewOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "render [pack files...]",
		Short: "Render the packs to a PNG at a simulated moment",
		Example: `
overlay render --out preview.png
overlay render raid.json --at 12s --width 1920 --height 1080
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), appOptions{Files: args})
			if err != nil {
				return err
			}
			defer a.Close()

			surface, err := renderPreview(a.provider.OverlayService, o)
			if err != nil {
				return err
			}
			if err := surface.SavePNG(out); err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", out)
			return nil
		},
	}

	o.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "Output file.")

	topLevel.AddCommand(cmd)
}
