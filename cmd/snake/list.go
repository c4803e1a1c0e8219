package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rule variants",
	Long:  `Shows the rule variants that can be passed to 'snake play' or 'snake classic --variant'.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return writeVariants(cmd.OutOrStdout())
}

// ruled is implemented by variants whose tail rule can be reported.
type ruled interface {
	Rule() snake.Rule
}

func writeVariants(w io.Writer) error {
	variants := registry.List()
	if len(variants) == 0 {
		_, err := fmt.Fprintln(w, "No variants available.")
		return err
	}

	rows := make([][]string, 0, len(variants))
	for _, info := range variants {
		rule := "-"
		if g, err := registry.Create(info.ID, nil); err == nil {
			if r, ok := g.(ruled); ok {
				rule = r.Rule().Describe()
			}
		}
		rows = append(rows, []string{info.ID, info.Title, rule})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		}).
		Headers("ID", "TITLE", "TAIL RULE").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n\nRun 'snake play <id>' to play a variant.\n", t.Render())
	return err
}
