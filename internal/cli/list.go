package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/recursion/internal/demo"
)

// PatternList is the payload of the list command.
type PatternList struct {
	Patterns []*demo.Pattern `json:"patterns"`
}

// RenderText prints the patterns as a table.
func (l PatternList) RenderText(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"pattern", "usage", "output", "description"})
	table.SetAutoWrapText(false)
	for _, p := range l.Patterns {
		output := "value"
		if p.Emits {
			output = "emits"
		}
		table.Append([]string{p.Name, p.Usage(), output, p.Description})
	}
	table.Render()
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recursion patterns",
		Long: `List every pattern usable in plans and with "recursion eval".

Example:
  recursion list
  recursion list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd).Success(PatternList{Patterns: demo.Patterns()})
		},
	}
	return cmd
}
