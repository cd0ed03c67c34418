package main

import (
	"context"
	"wtdata-backend/cmd/wtdata/commands"
	"wtdata-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "wtdata")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
