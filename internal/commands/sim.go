package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/render/terminal"
	"github.com/KirkDiggler/overlay-engine/internal/simulate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const clearScreen = "\x1b[H\x1b[2J"

type simOptions struct {
	Seed     uint64
	Duration time.Duration
	Frames   int
	Cols     int
	Rows     int
	Fast     bool
	Plain    bool
}

func addSim(topLevel *cobra.Command) {
	o := &simOptions{}

	cmd := &cobra.Command{
		Use:   "sim [pack files...]",
		Short: "Run the packs against simulated game state in the terminal",
		Example: `
overlay sim
overlay sim --seed 7 --duration 30s
overlay sim raid.json --frames 1 --plain
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a, err := openApp(ctx, appOptions{Files: args})
			if err != nil {
				return err
			}
			defer a.Close()

			cols, rows := o.Cols, o.Rows
			if cols <= 0 || rows <= 0 {
				cols, rows = terminalSize()
			}
			surface := terminal.NewSurface(cols, rows)
			sim := simulate.New(simulate.DefaultScenario(), simulate.NewSeededRoller(o.Seed))
			svc := a.provider.OverlayService

			interval := a.cfg.Runtime.UpdateInterval
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			out := cmd.OutOrStdout()
			for frame := 0; ; frame++ {
				now := uint32(frame) * uint32(interval.Milliseconds())
				svc.Update(sim.Snapshot(now))
				surface.Clear()
				svc.Render(surface, surface.ScreenSize())

				if o.Plain {
					fmt.Fprint(out, surface.Plain())
				} else {
					fmt.Fprint(out, clearScreen+surface.String())
				}

				if o.Frames > 0 && frame+1 >= o.Frames {
					return nil
				}
				if o.Frames <= 0 && time.Duration(now)*time.Millisecond >= o.Duration {
					return nil
				}
				if o.Fast {
					continue
				}
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().Uint64Var(&o.Seed, "seed", 1, "Seed for the simulated buff and cooldown phases.")
	cmd.Flags().DurationVar(&o.Duration, "duration", 10*time.Second, "Simulated time to run for.")
	cmd.Flags().IntVar(&o.Frames, "frames", 0, "Stop after this many frames instead of a duration.")
	cmd.Flags().IntVar(&o.Cols, "cols", 0, "Preview width in cells, the terminal width by default.")
	cmd.Flags().IntVar(&o.Rows, "rows", 0, "Preview height in cells, the terminal height by default.")
	cmd.Flags().BoolVar(&o.Fast, "fast", false, "Do not wait between frames.")
	cmd.Flags().BoolVar(&o.Plain, "plain", false, "Print frames without colors or screen clearing.")

	topLevel.AddCommand(cmd)
}

// terminalSize falls back to 100x30 when stdout is not a terminal
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 1 {
			return w, h - 1
		}
	}
	return 100, 30
}
