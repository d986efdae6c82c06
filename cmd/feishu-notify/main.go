package main

import (
	"os"

	"feishu-notify/internal/host"
	"feishu-notify/internal/pkg/logger"
	"feishu-notify/internal/platform/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("FEISHU_NOTIFY_CONFIG"))
	if err != nil {
		os.Exit(host.NewReporter(os.Stdout, nil).Failure(host.FailureResult{
			Msg: "failed to load config: " + err.Error(),
		}))
	}

	logger.Init(cfg.Logging)

	runner := host.NewRunner(cfg, os.Stdin, os.Stdout)
	os.Exit(runner.Run(os.Args[1:]))
}
