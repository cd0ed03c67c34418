package commands

import (
	"fmt"
	"os"
	"wtdata-backend/lib/configutil"
	"wtdata-backend/lib/serviceutil"
	"wtdata-backend/services/vehicles"
	"wtdata-backend/services/vehicles/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var listLimit *int

func init() {
	listLimit = listCmd.Flags().Int("limit", 25, "Maximum number of rows to print.")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <aviation|ground|helicopters>",
	Short: "Prints vehicles stored in the database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category, err := vehicles.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		database, err := cfg.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		query, err := vehicles.BuildQuery(vehicles.QuerySpec{
			Category: category,
			Page:     1,
			Limit:    *listLimit,
			SortBy:   "name",
		})
		if err != nil {
			serviceutil.Fatal("failed to build query", err)
		}

		rows, err := database.QueryContext(cmd.Context(), query.DataSQL, query.DataArgs...)
		if err != nil {
			serviceutil.Fatal("failed to query db", err)
		}
		defer rows.Close()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Nation", "Rank", "Role"})

		for rows.Next() {
			row, err := vehicles.ScanRowMap(rows)
			if err != nil {
				serviceutil.Fatal("failed to scan row", err)
			}
			shaped := vehicles.Shape(category, row)
			t.AppendRow(table.Row{
				shaped["name"],
				shaped["nation"],
				shaped["rank"],
				shaped["main_role"],
			})
		}
		if err := rows.Err(); err != nil {
			serviceutil.Fatal("failed to read rows", err)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
