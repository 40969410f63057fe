package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs",
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		runs, err := s.ListRuns(historyLimit)
		if err != nil {
			fmt.Printf("Failed to list runs: %v\n", err)
			os.Exit(1)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Kind", "Status", "Model", "Created"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.ID,
				run.Kind,
				run.Status,
				run.Metadata["model"],
				run.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		t.Render()
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
}
