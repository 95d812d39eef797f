package commands

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the packs in the store",
		Example: `
overlay list
OVERLAY_PACK_STORE=redis overlay list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.provider.PackRepository.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), faint("no packs stored"))
				return nil
			}

			tbl := newTable("KEY", "NAME", "LAYER", "ELEMENTS", "UPDATED")
			for _, record := range records {
				stats := document.Summarize(record.Pack)
				tbl.AddRow(record.Key, record.Pack.DisplayName("pack"), record.Pack.Layer, stats.Elements,
					record.UpdatedAt.Local().Format(time.DateTime))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
