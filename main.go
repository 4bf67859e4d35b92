// main.go

package main

import (
	"github.com/dotkit/dotkit/cmd"
	"github.com/dotkit/dotkit/pkg/logger"
	"github.com/dotkit/dotkit/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init("dotkit"); err != nil {
		logger.L().Warn("Telemetry disabled: init failed")
	}

	cmd.Execute()
}
