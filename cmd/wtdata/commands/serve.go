package commands

import (
	"log/slog"
	"net/http"
	"wtdata-backend/lib/configutil"
	"wtdata-backend/lib/serviceutil"
	"wtdata-backend/lib/telemetry"
	"wtdata-backend/services/vehicles/db"
	"wtdata-backend/services/vehicles/server"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the vehicle database over http.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		port := cfg.Port
		if port == 0 {
			port = 8000
		}

		database, err := cfg.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		telemetry.InstrumentPerfStats(serviceutil.SignalContext())

		mux := http.NewServeMux()
		service := server.NewService(database)
		service.Register(mux)

		slog.Info("serving vehicle data", "port", port)
		serviceutil.StartHttpServer(port, server.Cors(mux))
	},
}
