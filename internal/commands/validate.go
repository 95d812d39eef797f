package commands

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/overlay-engine/internal/document"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/spf13/cobra"
)

func addValidate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validate <pack files...>",
		Short: "Check pack documents and summarize what they contain",
		Example: `
overlay validate raid.json
overlay validate packs/*.json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := newTable("FILE", "STATUS", "DETAIL")
			failed := 0
			for _, path := range args {
				detail, err := validateFile(path)
				if err != nil {
					failed++
					tbl.AddRow(path, red("fail"), fmt.Sprintf("%s: %v", ovlerr.GetCode(err), err))
					continue
				}
				tbl.AddRow(path, green("ok"), detail)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)

			if failed > 0 {
				return ovlerr.Newf(ovlerr.CodeInvalidArgument, "%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func validateFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ovlerr.NotFoundf("file %s does not exist", path)
		}
		return "", ovlerr.Unavailable(err, "failed to open file")
	}
	defer f.Close()

	pack, err := document.Read(f)
	if err != nil {
		return "", err
	}
	stats := document.Summarize(pack)
	return fmt.Sprintf("%q: %d elements, depth %d, %d conditions",
		pack.Name, stats.Elements, stats.Depth, stats.Conditions), nil
}
