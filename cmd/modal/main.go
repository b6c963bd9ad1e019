package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // for errors before the logger is ready
	"os"

	"github.com/bethropolis/modal/internal/app"
	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.NewFlags(config.AppName, os.Stderr)
	rest, err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}

	res, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	cfg := res.Config

	output, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("Failed to open log output: %v", err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, output)

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v; using defaults", cfgErr)
	}
	if len(res.Unrecognized) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", res.Path, res.Unrecognized)
	}

	filePath := ""
	if len(rest) > 0 {
		filePath = rest[0]
	}
	if len(rest) > 1 {
		logger.Warnf("Only one file can be edited, ignoring %v", rest[1:])
	}

	editor, err := app.New(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	if err := editor.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
