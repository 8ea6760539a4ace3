package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/runegrid/pkg/config"
	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/loader"
)

// pathsCommand creates the paths command that lists the dataset.
func (c *CLI) pathsCommand() *cobra.Command {
	var keysOnly bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the rune paths in the dataset",
		Long: `Fetch the dataset and list its paths with slot and rune counts.

The keys shown here are what --path accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			paths, err := c.fetchPaths(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if keysOnly {
				for _, k := range dataset.Keys(paths) {
					fmt.Fprintln(out, k)
				}
				return nil
			}
			fmt.Fprintln(out, pathsTable(paths))
			printDetail("%d paths, %d icons from %s", len(paths), dataset.ImageCount(paths), cfg.Source.DataURL)
			printNextStep("Draw one path", "runegrid run --path "+paths[0].Key)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keysOnly, "keys", false, "print only the path keys")

	return cmd
}

// fetchPaths fetches the full dataset behind a spinner.
func (c *CLI) fetchPaths(ctx context.Context, cfg config.Config) ([]dataset.RunePath, error) {
	spinner := newSpinner(ctx, "Fetching dataset...")
	spinner.Start()

	paths, err := loader.New(c.newClient(cfg), c.Logger).FetchDataset(ctx, nil)
	if err != nil {
		spinner.Fail("Dataset unavailable")
		return nil, err
	}
	spinner.Stop()
	if len(paths) == 0 {
		return nil, fmt.Errorf("dataset %s has no paths", cfg.Source.DataURL)
	}
	return paths, nil
}

// pathsTable renders paths as a bordered table.
func pathsTable(paths []dataset.RunePath) string {
	rows := make([][]string, len(paths))
	for i, p := range paths {
		rows[i] = []string{p.Key, p.Name, strconv.Itoa(len(p.Slots)), strconv.Itoa(p.RuneCount()), p.Icon}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Name", "Slots", "Runes", "Icon").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 2 || col == 3:
				return lipgloss.NewStyle().Foreground(colorWhite).Align(lipgloss.Right)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		}).
		Render()
}
