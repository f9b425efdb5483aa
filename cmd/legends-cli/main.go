package main

import (
	"github.com/rinebergc/tesl-card-data-scraper/cmd/legends-cli/commands"
	"github.com/rinebergc/tesl-card-data-scraper/lib/serviceutil"
	"github.com/rinebergc/tesl-card-data-scraper/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(ctx, "legends-cli")
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
