package commands

import (
	"os"

	"github.com/KirkDiggler/overlay-engine/internal/clipboard"
	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/spf13/cobra"
)

func addExport(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export <key>",
		Short: "Write a stored pack as a document",
		Example: `
overlay export 6f1c... > raid.json
overlay export 6f1c... --out raid.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			record, err := a.provider.PackRepository.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if out == "" {
				return document.Write(cmd.OutOrStdout(), record.Pack)
			}
			data, err := document.Save(record.Pack)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return ovlerr.Wrapf(err, "failed to write %s", out)
			}
			cmd.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty.")

	topLevel.AddCommand(cmd)
}

func addCopy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "copy <key> <element name>",
		Short: "Copy an element of a stored pack to the system clipboard",
		Example: `
overlay copy 6f1c... boons
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			record, err := a.provider.PackRepository.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			target := findByName(record.Pack, args[1])
			if target == nil {
				return ovlerr.NotFoundf("no element named %q in pack %s", args[1], args[0])
			}
			if err := clipboard.NewBridge(nil).Export(target); err != nil {
				return err
			}
			cmd.Printf("Copied %s\n", bold(args[1]))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

// findByName returns the first element with the name in display order
func findByName(pack *element.Pack, name string) *element.Element {
	var found *element.Element
	element.Walk(pack.Elements, func(e *element.Element, _ int) bool {
		if found == nil && e.Name == name {
			found = e
		}
		return found == nil
	})
	return found
}
