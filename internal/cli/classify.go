package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"axis-mapper/internal/config"
)

// classifyRow is one axis in the classify output.
type classifyRow struct {
	Axis        string `json:"axis"`
	Cardinality int    `json:"cardinality"`
	Category    string `json:"category"`
	Signal      string `json:"signal"`
}

func newClassifyCommand(a *app) *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show the category detected for every dataset axis",
		Long: `Classify each axis by name, standard_name attribute, axis attribute
and finally by the range of its values, and report which signal decided.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(dataset)
			if err != nil {
				return err
			}

			rows := make([]classifyRow, 0, ds.Len())
			for i := range ds.Axes {
				ax := &ds.Axes[i]
				det := a.engine.Classify(ax)
				rows = append(rows, classifyRow{
					Axis:        ax.Name,
					Cardinality: ax.Len(),
					Category:    det.Category.String(),
					Signal:      det.Signal.String(),
				})
			}

			if a.cfg.Output == config.OutputJSON {
				return renderJSON(cmd.OutOrStdout(), rows)
			}

			t := newTable(cmd.OutOrStdout(), table.Row{"Axis", "Size", "Category", "Signal"})
			for _, r := range rows {
				t.AppendRow(table.Row{r.Axis, r.Cardinality, r.Category, r.Signal})
			}
			t.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "Dataset descriptor (YAML)")

	return cmd
}
