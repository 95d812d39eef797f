package commands

import (
	"os"

	"github.com/KirkDiggler/overlay-engine/internal/clipboard"
	"github.com/KirkDiggler/overlay-engine/internal/editor"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/simulate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func addEdit(topLevel *cobra.Command) {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the stored packs interactively with a live preview",
		Long: "Edit the stored packs interactively. Changes are saved to the store as they are made. " +
			"The preview runs against simulated game state.",
		Example: `
overlay edit
OVERLAY_EDIT_DURING_COMBAT=true overlay edit --seed 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return ovlerr.New(ovlerr.CodeUnavailable, "edit needs an interactive terminal")
			}

			a, err := openApp(cmd.Context(), appOptions{Autosave: true})
			if err != nil {
				return err
			}
			defer a.Close()

			model := editor.New(&editor.Config{
				Service:   a.provider.OverlayService,
				Simulator: simulate.New(simulate.DefaultScenario(), simulate.NewSeededRoller(seed)),
				Clipboard: clipboard.NewBridge(nil),
				Interval:  a.cfg.Runtime.UpdateInterval,
			})

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the simulated buff and cooldown phases.")

	topLevel.AddCommand(cmd)
}
