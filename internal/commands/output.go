package commands

import (
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func newTable(headers ...any) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	bolded := make([]any, len(headers))
	for i, h := range headers {
		bolded[i] = bold(h)
	}
	tbl.AddRow(bolded...)
	return tbl
}
