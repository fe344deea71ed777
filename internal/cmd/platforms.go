package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/namewastaken/namewastaken/internal/core/provider"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the supported platforms and their aliases",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Platform", "Name", "Aliases", "Profile URL"})

		for _, p := range provider.List() {
			t.AppendRow(table.Row{
				p.DisplayName,
				p.Name,
				strings.Join(p.Aliases, ", "),
				p.ProfileURL("<handle>"),
			})
		}

		fmt.Println(t.Render())
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
